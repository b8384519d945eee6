package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"ShinnPerfume/internal/catalog"
)

func newListCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list [her|him]",
		Short: "List perfumes, optionally of one category",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cats := catalog.Categories
			if len(args) == 1 {
				c, err := catalog.ParseCategory(args[0])
				if err != nil {
					return err
				}
				cats = []catalog.Category{c}
			}

			c := o.client()
			out := []catalog.Perfume{}
			for _, cat := range cats {
				f := c.FetchByCategory(cmd.Context(), cat)
				if f.Failed() {
					return fmt.Errorf("list %s: %w", cat, f.Err)
				}
				out = append(out, f.Perfumes...)
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	}
}

func newAddCmd(o *options) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "add --file perfume.json",
		Short: "Create or replace a perfume from a JSON record",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var p catalog.Perfume
			if err := readJSON(cmd, file, &p); err != nil {
				return err
			}
			created := o.client().Add(cmd.Context(), p)
			if created == nil {
				return errFailed
			}
			return printJSON(cmd.OutOrStdout(), created)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "JSON file with the record, - for stdin")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func newUpdateCmd(o *options) *cobra.Command {
	var sets []string
	cmd := &cobra.Command{
		Use:   "update <her|him> <id> --set field=value...",
		Short: "Change fields of an existing perfume",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, id, err := parseIdentity(args)
			if err != nil {
				return err
			}
			fields, err := parseSets(sets)
			if err != nil {
				return err
			}
			updated := o.client().Update(cmd.Context(), c, id, fields)
			if updated == nil {
				return errFailed
			}
			return printJSON(cmd.OutOrStdout(), updated)
		},
	}
	cmd.Flags().StringArrayVar(&sets, "set", nil, "field=value, repeatable (e.g. --set name=NOCTURNE)")
	_ = cmd.MarkFlagRequired("set")
	return cmd
}

func newDeleteCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <her|him> <id>",
		Short: "Delete a perfume (succeeds when it does not exist)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, id, err := parseIdentity(args)
			if err != nil {
				return err
			}
			if !o.client().Delete(cmd.Context(), c, id) {
				return errFailed
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", catalog.Key(c, id))
			return nil
		},
	}
}

func newInitCmd(o *options) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Bulk upsert perfumes (the default dataset unless --file is given)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			perfumes := catalog.DefaultPerfumes()
			if file != "" {
				perfumes = nil
				if err := readJSON(cmd, file, &perfumes); err != nil {
					return err
				}
			}
			if !o.client().InitializeAll(cmd.Context(), perfumes) {
				return errFailed
			}
			fmt.Fprintf(cmd.OutOrStdout(), "initialized %d perfumes\n", len(perfumes))
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "JSON array of records, - for stdin")
	return cmd
}

func newResetCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Delete every perfume and restore the default dataset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !o.client().ResetToDefaults(cmd.Context()) {
				return errFailed
			}
			fmt.Fprintln(cmd.OutOrStdout(), "catalog reset to defaults")
			return nil
		},
	}
}

func newDumpCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "dump",
		Short: "Print every stored perfume grouped by category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d := o.client().FetchDebugDump(cmd.Context())
			if d.Err != nil {
				return d.Err
			}
			return printJSON(cmd.OutOrStdout(), d.Dump)
		},
	}
}

func newClearCmd(o *options) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every perfume",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !yes {
				return fmt.Errorf("refusing to clear the catalog without --yes")
			}
			if !o.client().ClearAll(cmd.Context()) {
				return errFailed
			}
			fmt.Fprintln(cmd.OutOrStdout(), "catalog cleared")
			return nil
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "confirm")
	return cmd
}

func parseIdentity(args []string) (catalog.Category, int, error) {
	c, err := catalog.ParseCategory(args[0])
	if err != nil {
		return "", 0, err
	}
	id, err := strconv.Atoi(args[1])
	if err != nil || id <= 0 {
		return "", 0, fmt.Errorf("invalid id %q", args[1])
	}
	return c, id, nil
}

func parseSets(sets []string) (map[string]any, error) {
	fields := make(map[string]any, len(sets))
	for _, s := range sets {
		k, v, ok := strings.Cut(s, "=")
		if !ok || strings.TrimSpace(k) == "" {
			return nil, fmt.Errorf("--set %q: want field=value", s)
		}
		fields[strings.TrimSpace(k)] = v
	}
	return fields, nil
}

func readJSON(cmd *cobra.Command, path string, v any) error {
	var r io.Reader = cmd.InOrStdin()
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}
	if err := json.NewDecoder(r).Decode(v); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}
