package sandbox

import (
	"bytes"
	"encoding/json"
	"text/template"
)

// Fixed paths of the generated project.
const (
	EntryPath         = "/App.tsx"
	ThemeProviderPath = "/next-themes.tsx"
	DemoPath          = "/demo.tsx"
	UtilsPath         = "/lib/utils.ts"
	GlobalsPath       = "/globals.css"
	TailwindPath      = "/tailwind.config.js"
	TSConfigPath      = "/tsconfig.json"

	// ComponentExt is appended to the component import path to form its file
	// path.
	ComponentExt = ".tsx"
)

// The Variants lookup runs in the preview runtime: the assembler cannot tell
// which export shape the demo uses.
var entryTemplate = template.Must(template.New("entry").Parse(`
import React from 'react';
import Variants, { {{.Name}} } from './demo';
import { ThemeProvider } from './next-themes';
import { RouterProvider } from 'next/router';
import {{.ComponentImport}};

export default function App() {
  return (
    <ThemeProvider attribute="class" defaultTheme="{{.Theme}}" enableSystem={false}>
      <RouterProvider>
        <div className="flex items-center h-screen m-auto justify-center">
          <div className="bg-background text-foreground w-full h-full flex items-center justify-center relative">
            <div className="absolute lab-bg inset-0 size-full bg-[radial-gradient(#00000055_1px,transparent_1px)] dark:bg-[radial-gradient(#ffffff22_1px,transparent_1px)] [background-size:16px_16px]">
            </div>
            <div className="flex w-full min-w-[500px] md:w-auto justify-center items-center p-4 relative">
              {Variants?.{{.Name}} ? <Variants.{{.Name}} /> : <{{.Name}} />}
            </div>
          </div>
        </div>
      </RouterProvider>
    </ThemeProvider>
  );
}
`))

type entryData struct {
	Name string
	// ComponentImport is a quoted string literal, never raw request text.
	ComponentImport string
	Theme           Theme
}

func renderEntry(req *Request) (string, error) {
	specifier, err := quoteSpecifier(req.ComponentImportPath())
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	err = entryTemplate.Execute(&buf, entryData{
		Name:            req.DemoComponentName,
		ComponentImport: specifier,
		Theme:           req.Theme,
	})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

// quoteSpecifier renders s as a double-quoted string literal. JSON string
// escaping is a subset of what JS accepts, including U+2028 and U+2029.
func quoteSpecifier(s string) (string, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// themeProviderSource toggles the root class in an effect keyed on the theme,
// so the DOM is touched once per change rather than once per render.
const themeProviderSource = `
import React, { createContext, useContext, useState, useEffect } from 'react';

const ThemeContext = createContext({
  theme: 'light',
  setTheme: (theme: string) => {},
});

export const useTheme = () => useContext(ThemeContext);

export const ThemeProvider = ({ children, defaultTheme = 'light', enableSystem = false }) => {
  const [theme, setTheme] = useState(defaultTheme);

  useEffect(() => {
    const root = window.document.documentElement;
    root.classList.remove('light', 'dark');
    root.classList.add(theme);
  }, [theme]);

  return (
    <ThemeContext.Provider value={{ theme, setTheme }}>
      {children}
    </ThemeContext.Provider>
  );
};
`

const utilsSource = `
export function cn(...inputs: (string | undefined | null | false)[]) {
  return inputs.filter(Boolean).join(' ');
}
`

type tsConfig struct {
	CompilerOptions tsCompilerOptions `json:"compilerOptions"`
}

type tsCompilerOptions struct {
	JSX             string              `json:"jsx"`
	ESModuleInterop bool                `json:"esModuleInterop"`
	BaseURL         string              `json:"baseUrl"`
	Paths           map[string][]string `json:"paths"`
}

// renderTSConfig declares the "@/" alias the host application uses, mapped to
// the project root.
func renderTSConfig() string {
	data, err := json.MarshalIndent(tsConfig{
		CompilerOptions: tsCompilerOptions{
			JSX:             "react-jsx",
			ESModuleInterop: true,
			BaseURL:         ".",
			Paths: map[string][]string{
				"@/*": {"./*"},
			},
		},
	}, "", "  ")
	if err != nil {
		panic("sandbox: encode tsconfig: " + err.Error())
	}
	return string(data)
}
