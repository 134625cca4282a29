// MIT License
//
// Copyright (c) 2023 Lack
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package main

import (
	"bytes"
	stdjson "encoding/json"
	"fmt"
	"io"
	"os"

	json "github.com/json-iterator/go"
	"github.com/spf13/cobra"
	log "github.com/vine-io/vine/lib/logger"
	"gopkg.in/yaml.v2"

	"github.com/vine-io/modeler"
	"github.com/vine-io/modeler/bpmn"
	"github.com/vine-io/modeler/palette"
	"github.com/vine-io/modeler/properties"
)

var (
	cfgFile  string
	logLevel string
	output   string

	cfg *modeler.Config
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "modeler",
		Short:        "Inspect the customized BPMN modeler palette and properties panel",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = modeler.LoadConfig(cfgFile)
			if err != nil {
				return err
			}
			if logLevel != "" {
				cfg.LogLevel = logLevel
				if err = cfg.Validate(); err != nil {
					return err
				}
			}

			level, err := log.GetLevel(cfg.LogLevel)
			if err != nil {
				return fmt.Errorf("log level %q: %w", cfg.LogLevel, err)
			}
			return log.DefaultLogger.Init(log.WithLevel(level))
		},
	}

	root.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default "+modeler.DefaultConfigPath+")")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: trace, debug, info, warn, error")
	root.PersistentFlags().StringVarP(&output, "output", "o", "json", "output format: json or yaml")

	root.AddCommand(newPaletteCmd(), newPropertiesCmd(), newCreateCmd())
	return root
}

func newModeler(extra ...modeler.Option) (*modeler.Modeler, error) {
	opts, err := cfg.Options()
	if err != nil {
		return nil, err
	}
	return modeler.New(append(opts, extra...)...)
}

func newPaletteCmd() *cobra.Command {
	var mode string

	cmd := &cobra.Command{
		Use:   "palette",
		Short: "Print the palette entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var extra []modeler.Option
			if mode != "" {
				extra = append(extra, modeler.WithPaletteMode(palette.Mode(mode)))
			}
			m, err := newModeler(extra...)
			if err != nil {
				return err
			}

			return encode(cmd.OutOrStdout(), m.PaletteEntries())
		},
	}
	cmd.Flags().StringVar(&mode, "mode", "", "override the palette mode: allow or deny")

	return cmd
}

type entryView struct {
	properties.Entry `yaml:",inline"`
	Value            string `json:"value" yaml:"value"`
	ReadOnly         bool   `json:"readOnly" yaml:"readOnly"`
}

type groupView struct {
	ID      string       `json:"id" yaml:"id"`
	Label   string       `json:"label" yaml:"label"`
	Entries []*entryView `json:"entries" yaml:"entries"`
}

type tabView struct {
	ID     string       `json:"id" yaml:"id"`
	Label  string       `json:"label" yaml:"label"`
	Groups []*groupView `json:"groups" yaml:"groups"`
}

func newPropertiesCmd() *cobra.Command {
	var (
		typ  string
		id   string
		name string
	)

	cmd := &cobra.Command{
		Use:   "properties",
		Short: "Print the properties panel of an element",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := newModeler()
			if err != nil {
				return err
			}

			elem, err := m.Options().Factory.CreateShape(bpmn.ShapeAttrs{Type: typ})
			if err != nil {
				return err
			}
			if id != "" {
				if err = bpmn.SetProperty(elem, bpmn.PropertyID, id); err != nil {
					return err
				}
			}
			elem.SetName(name)

			return encode(cmd.OutOrStdout(), viewTabs(m.Tabs(elem), elem))
		},
	}
	cmd.Flags().StringVar(&typ, "type", "bpmn:Task", "BPMN type of the selected element")
	cmd.Flags().StringVar(&id, "id", "", "element id (random when empty)")
	cmd.Flags().StringVar(&name, "name", "", "element name")

	return cmd
}

func viewTabs(tabs []*properties.Tab, elem bpmn.Element) []*tabView {
	out := make([]*tabView, 0, len(tabs))
	for _, tab := range tabs {
		tv := &tabView{ID: tab.ID, Label: tab.Label, Groups: []*groupView{}}
		for _, group := range tab.Groups {
			gv := &groupView{ID: group.ID, Label: group.Label, Entries: []*entryView{}}
			for _, entry := range group.Entries {
				gv.Entries = append(gv.Entries, &entryView{
					Entry:    *entry,
					Value:    entry.Get(elem)[entry.ModelProperty],
					ReadOnly: entry.IsDisabled(elem),
				})
			}
			tv.Groups = append(tv.Groups, gv)
		}
		out = append(out, tv)
	}
	return out
}

func newCreateCmd() *cobra.Command {
	var (
		x, y int64
		drag bool
		name string
		mode string
	)

	cmd := &cobra.Command{
		Use:   "create <entry>",
		Short: "Trigger a palette entry, drop the shape and print the diagram",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var extra []modeler.Option
			if mode != "" {
				extra = append(extra, modeler.WithPaletteMode(palette.Mode(mode)))
			}
			m, err := newModeler(extra...)
			if err != nil {
				return err
			}

			kind := modeler.Click
			if drag {
				kind = modeler.DragStart
			}
			event := &palette.Event{X: x, Y: y, Source: string(kind)}
			if err = m.Trigger(args[0], kind, event); err != nil {
				return err
			}

			placement, err := m.Dragging().End()
			if err != nil {
				return err
			}
			if name != "" {
				if err = m.Update(placement.Element.GetID(), "name", name); err != nil {
					return err
				}
			}
			log.Infof("created %s %s", bpmn.TypeOf(placement.Element), placement.Element.GetID())

			data, err := m.Diagram().WriteToBytes()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().Int64Var(&x, "x", 200, "drop x coordinate")
	cmd.Flags().Int64Var(&y, "y", 200, "drop y coordinate")
	cmd.Flags().BoolVar(&drag, "drag", false, "use the drag start handler instead of click")
	cmd.Flags().StringVar(&name, "name", "", "name of the created element")
	cmd.Flags().StringVar(&mode, "mode", "", "override the palette mode: allow or deny")

	return cmd
}

func encode(w io.Writer, v interface{}) error {
	var (
		data []byte
		err  error
	)
	switch output {
	case "json":
		data, err = indentJSON(v)
	case "yaml":
		data, err = yaml.Marshal(v)
	default:
		return fmt.Errorf("unknown output format %q", output)
	}
	if err != nil {
		return err
	}

	_, err = w.Write(data)
	return err
}

// indentJSON marshals v and indents the result. Custom marshalers such as
// palette.EntrySet emit compact JSON that jsoniter passes through unchanged.
func indentJSON(v interface{}) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	buf := bytes.NewBuffer(nil)
	if err = stdjson.Indent(buf, data, "", "  "); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}
