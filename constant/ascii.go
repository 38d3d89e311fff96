package constant

// AsciiArtLogo is the application's banner shown in the root help text.
const AsciiArtLogo = `
 _   _            _
| |_(_)_ __   ___| |_
| __| | '_ \ / __| __|
| |_| | | | | (__| |_
 \__|_|_| |_|\___|\__|
`
