package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/goccy/go-yaml"
	"github.com/pgavlin/lexpath"
	"github.com/sugawarayuuta/sonnet"
)

var (
	colorRed   = color.New(color.FgRed)
	colorCyan  = color.New(color.FgCyan)
	colorFaint = color.New(color.Faint)
)

func (a *app) print(v any) error {
	return writeValue(a.stdout, a.output, v)
}

func writeValue(w io.Writer, format outputFlag, v any) error {
	switch format {
	case outputJSON:
		enc := sonnet.NewEncoder(w)
		enc.SetIndent("", "    ")
		return enc.Encode(v)
	case outputYAML:
		return yaml.NewEncoder(w).Encode(v)
	default:
		return writeText(w, v)
	}
}

func writeText(w io.Writer, v any) error {
	var err error
	switch v := v.(type) {
	case lexpath.ParsedPath:
		err = writeFields(w,
			"root", v.Root,
			"dir", v.Dir,
			"base", v.Base,
			"ext", v.Ext,
			"name", v.Name)
	case segments:
		if err = writeFields(w, "root", v.Root); err == nil {
			for _, s := range v.Segments {
				if _, err = fmt.Fprintln(w, s); err != nil {
					break
				}
			}
		}
	case []string:
		for _, s := range v {
			if _, err = fmt.Fprintln(w, s); err != nil {
				break
			}
		}
	default:
		_, err = fmt.Fprintln(w, v)
	}
	return err
}

// writeFields writes alternating labels and values, one per line. Empty
// values are rendered as a faint "(empty)".
func writeFields(w io.Writer, kvs ...string) error {
	for i := 0; i+1 < len(kvs); i += 2 {
		value := kvs[i+1]
		if value == "" {
			value = colorFaint.Sprint("(empty)")
		}
		if _, err := fmt.Fprintf(w, "%s %s\n", colorCyan.Sprintf("%-5s", kvs[i]+":"), value); err != nil {
			return err
		}
	}
	return nil
}
