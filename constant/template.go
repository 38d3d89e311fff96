package constant

// ThemeTemplate is a Go text/template for scaffolding new theme files.
const ThemeTemplate = `# {{ .Name }} theme for {{ .App }}
#
# Top-level keys under [colors] named after a palette role
# (e.g. "background" or "TitlePrimary") override that role.
# Any other name defines a custom color. Tables define namespaces,
# which can be merged over the palette with --namespace.
# A list of colors picks the first one that parses.

shadow = true

# One of: none, simple, outset
borders = "simple"

[colors]
background = "blue"
shadow = ["#222222", "black"]
view = "white"

primary = "black"
secondary = "blue"
tertiary = "light white"

title_primary = "red"
title_secondary = "light blue"

highlight = "red"
highlight_inactive = "blue"
highlight_text = "white"

accent = "#5b8def"

[colors.dark]
view = "#1e1e2e"
primary = "#cdd6f4"
background = "black"
`
