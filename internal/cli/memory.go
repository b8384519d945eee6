package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"ShinnPerfume/internal/memory"
	"ShinnPerfume/internal/storefront"
)

func newMemoryCmd(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "memory",
		Short: "Read or append chat transcripts",
	}

	get := &cobra.Command{
		Use:   "get <session>",
		Short: "Print the transcript of a session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			msgs, err := storefront.NewMemoryClient(o.client()).Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), msgs)
		},
	}

	var role, content string
	save := &cobra.Command{
		Use:   "save <session> --role user --content text",
		Short: "Append one message to a session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			msgs := []memory.Message{{Role: role, Content: content}}
			n, err := storefront.NewMemoryClient(o.client()).Save(cmd.Context(), args[0], msgs)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "session %s now has %d messages\n", args[0], n)
			return nil
		},
	}
	save.Flags().StringVar(&role, "role", "user", "message role")
	save.Flags().StringVar(&content, "content", "", "message text")
	_ = save.MarkFlagRequired("content")

	cmd.AddCommand(get, save)
	return cmd
}
