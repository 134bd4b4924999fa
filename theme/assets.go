package theme

import (
	"bytes"
	"sync"
	"text/template"
)

const globalsTemplate = `
@tailwind base;
@tailwind components;
@tailwind utilities;

html,
body {
  max-width: 100vw;
}

* {
  box-sizing: border-box;
  padding: 0;
  margin: 0;
}

a {
  color: inherit;
  text-decoration: none;
}

@layer base {
  :root {
{{- range .Light}}
    --{{.Name}}: {{.Value}};
{{- end}}
  }
  .dark {
{{- range .Dark}}
    --{{.Name}}: {{.Value}};
{{- end}}
  }
}

@layer base {
  * {
    @apply border-border;
  }
  body {
    @apply bg-background text-foreground;
  }
}
`

const tailwindTemplate = `
module.exports = {
  darkMode: 'class',
  content: ['./**/*.{js,ts,jsx,tsx}'],
  theme: {
    extend: {
      colors: {
{{- range .Colors}}
{{- if .HasForeground}}
        {{.Name}}: {
          DEFAULT: 'hsl(var(--{{.Name}}))',
          foreground: 'hsl(var(--{{.Name}}-foreground))',
        },
{{- else}}
        {{.Name}}: 'hsl(var(--{{.Name}}))',
{{- end}}
{{- end}}
      },
      borderRadius: {
        lg: 'var(--radius)',
        md: 'calc(var(--radius) - 2px)',
        sm: 'calc(var(--radius) - 4px)',
      },
    },
  },
  plugins: [],
}
`

var (
	renderOnce     sync.Once
	globalsCSS     string
	tailwindConfig string
)

func render() {
	globalsCSS = mustRender("globals", globalsTemplate, map[string]Palette{
		"Light": LightPalette,
		"Dark":  DarkPalette,
	})
	tailwindConfig = mustRender("tailwind", tailwindTemplate, map[string][]ColorGroup{
		"Colors": UtilityColors,
	})
}

// mustRender panics on failure: the templates and their data are package
// constants, so an error is a programming mistake caught by the tests.
func mustRender(name, text string, data any) string {
	tmpl := template.Must(template.New(name).Parse(text))
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		panic("theme: render " + name + ": " + err.Error())
	}
	return buf.String()
}

// GlobalsCSS returns the global stylesheet with both token palettes.
func GlobalsCSS() string {
	renderOnce.Do(render)
	return globalsCSS
}

// TailwindConfig returns the utility-class configuration.
func TailwindConfig() string {
	renderOnce.Do(render)
	return tailwindConfig
}
