package cmd

import (
	"context"
	"strconv"

	"github.com/ArnoutVos/Firedrive/internal/auth"
	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "batch operations over many documents",
}

func init() {
	rootCmd.AddCommand(batchCmd)
	batchCmd.SetHelpCommand(&cobra.Command{Use: "no-help", Hidden: true})
	batchCmd.AddCommand(batchClientCmd())
	batchCmd.AddCommand(batchLanguageCmd())
	batchCmd.AddCommand(batchCopyCmd())
}

func batchClientCmd() *cobra.Command {
	var value int
	var docIDs []uint
	var userID int64

	var required = []string{"value", "doc-id"}

	command := &cobra.Command{
		Use:     "client",
		Short:   "reassign the client of the given documents",
		Example: "firedrive batch client -v <client-id> -d <doc-id>,<doc-id>",
		Run: func(cmd *cobra.Command, args []string) {
			if checkMissingFlags(cmd, required) {
				return
			}

			rt := newRuntime()

			err := rt.batch.Client(context.Background(), actor(userID), value, docIDs, documentContexts(docIDs))
			if err != nil {
				logrus.Error(err)
				return
			}

			color.Green("%d document(s) updated\n", len(docIDs))
		},
	}

	command.Flags().IntVarP(&value, "value", "v", 0, "new client id (required)")
	command.Flags().UintSliceVarP(&docIDs, "doc-id", "d", nil, "document ids (required)")
	command.Flags().Int64VarP(&userID, "user", "u", 0, "acting user id")

	return command
}

func batchLanguageCmd() *cobra.Command {
	var value int
	var docIDs []uint
	var userID int64

	var required = []string{"value", "doc-id"}

	command := &cobra.Command{
		Use:     "language",
		Short:   "reassign the language of the given documents",
		Example: "firedrive batch language -v <language-id> -d <doc-id>,<doc-id>",
		Run: func(cmd *cobra.Command, args []string) {
			if checkMissingFlags(cmd, required) {
				return
			}

			rt := newRuntime()

			err := rt.batch.Language(context.Background(), actor(userID), value, docIDs, documentContexts(docIDs))
			if err != nil {
				logrus.Error(err)
				return
			}

			color.Green("%d document(s) updated\n", len(docIDs))
		},
	}

	command.Flags().IntVarP(&value, "value", "v", 0, "new language id (required)")
	command.Flags().UintSliceVarP(&docIDs, "doc-id", "d", nil, "document ids (required)")
	command.Flags().Int64VarP(&userID, "user", "u", 0, "acting user id")

	return command
}

func batchCopyCmd() *cobra.Command {
	var categoryID uint
	var docIDs []uint
	var userID int64

	var required = []string{"category-id", "doc-id"}

	command := &cobra.Command{
		Use:     "copy",
		Short:   "duplicate documents into another category",
		Example: "firedrive batch copy -c <category-id> -d <doc-id>,<doc-id>",
		Run: func(cmd *cobra.Command, args []string) {
			if checkMissingFlags(cmd, required) {
				return
			}

			rt := newRuntime()

			newIDs, warnings, err := rt.batch.Copy(context.Background(), actor(userID), categoryID, docIDs)
			for _, warning := range warnings {
				color.Yellow("%s\n", warning)
			}
			if err != nil {
				logrus.Error(err)
				return
			}

			for oldID, newID := range newIDs {
				color.Green("%s -> %s\n", strconv.FormatUint(uint64(oldID), 10), strconv.FormatUint(uint64(newID), 10))
			}
		},
	}

	command.Flags().UintVarP(&categoryID, "category-id", "c", 0, "target category id (required)")
	command.Flags().UintSliceVarP(&docIDs, "doc-id", "d", nil, "document ids (required)")
	command.Flags().Int64VarP(&userID, "user", "u", 0, "acting user id")

	return command
}

// documentContexts builds the per-id authorization contexts. The CLI
// authorises component-wide; a hosting application would pass each
// record's category scope instead.
func documentContexts(ids []uint) map[uint]auth.Resource {
	contexts := make(map[uint]auth.Resource, len(ids))
	for _, id := range ids {
		contexts[id] = auth.Component()
	}

	return contexts
}
