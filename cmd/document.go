package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/ArnoutVos/Firedrive/internal/model"
	"github.com/ArnoutVos/Firedrive/internal/service"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(createDocCmd())
	rootCmd.AddCommand(getDocCmd())
	rootCmd.AddCommand(listDocCmd())
	rootCmd.AddCommand(setStateCmd("trash", "move documents to the trash", model.StateTrashed))
	rootCmd.AddCommand(setStateCmd("publish", "publish documents", model.StatePublished))
	rootCmd.AddCommand(setStateCmd("unpublish", "unpublish documents", model.StateUnpublished))
	rootCmd.AddCommand(deleteDocCmd())
}

func createDocCmd() *cobra.Command {
	var title string
	var categoryID uint
	var categoryLabel string
	var file string
	var clientID int
	var languageID int
	var userID int64

	var required = []string{"title", "file"}

	command := &cobra.Command{
		Use:     "create",
		Short:   "create a document",
		Long:    `create a document owning a copy of the given file`,
		Example: "firedrive create -t <title> -c <category-id> -f <file>",
		Run: func(cmd *cobra.Command, args []string) {
			if checkMissingFlags(cmd, required) {
				return
			}

			rt := newRuntime()

			owned, err := rt.assets.Copy(file)
			if err != nil {
				logrus.Error(err)
				return
			}

			doc, warnings, err := rt.documents.Save(context.Background(), actor(userID), service.SaveRequest{
				Title:         title,
				CategoryID:    categoryID,
				CategoryLabel: categoryLabel,
				ClientID:      clientID,
				LanguageID:    languageID,
				FileName:      owned,
			})
			for _, warning := range warnings {
				color.Yellow("%s\n", warning)
			}
			if err != nil {
				logrus.Error(err)
				return
			}

			logrus.Infof("document created with id: %d", doc.ID)
		},
	}

	command.Flags().StringVarP(&title, "title", "t", "", "title of the document (required)")
	command.Flags().UintVarP(&categoryID, "category-id", "c", 0, "category id")
	command.Flags().StringVarP(&categoryLabel, "category", "n", "", "free-text category label, created on the fly")
	command.Flags().StringVarP(&file, "file", "f", "", "file to import (required)")
	command.Flags().IntVar(&clientID, "client", 0, "client id")
	command.Flags().IntVar(&languageID, "language-id", 0, "language id")
	command.Flags().Int64VarP(&userID, "user", "u", 0, "acting user id")

	command.Flags().SortFlags = false

	return command
}

func getDocCmd() *cobra.Command {
	var docID uint

	var required = []string{"doc-id"}

	command := &cobra.Command{
		Use:     "get",
		Short:   "get a document",
		Example: "firedrive get -d <doc-id>",
		Run: func(cmd *cobra.Command, args []string) {
			if checkMissingFlags(cmd, required) {
				return
			}

			rt := newRuntime()

			view, err := rt.documents.Get(context.Background(), docID)
			if err != nil {
				logrus.Error(err)
				return
			}

			doc := view.Document

			table := tablewriter.NewWriter(os.Stdout)
			table.SetHeader([]string{"ID", "Title", "Alias", "Category", "State", "Ordering", "File"})
			table.Append([]string{
				strconv.FormatUint(uint64(doc.ID), 10),
				doc.Title,
				doc.Alias,
				strconv.FormatUint(uint64(doc.CategoryID), 10),
				stateLabel(doc.State),
				strconv.Itoa(doc.Ordering),
				doc.FileName,
			})
			table.Render()

			printField("Reserved users", fmt.Sprint(view.ReservedUsers))
			printField("Reserved groups", fmt.Sprint(view.ReservedGroups))
			printField("Metadata", fmt.Sprint(view.Metadata))
		},
	}

	command.Flags().UintVarP(&docID, "doc-id", "d", 0, "document id (required)")

	return command
}

func listDocCmd() *cobra.Command {
	var categoryID uint

	var required = []string{"category-id"}

	command := &cobra.Command{
		Use:     "list",
		Short:   "list the documents of a category",
		Example: "firedrive list -c <category-id>",
		Run: func(cmd *cobra.Command, args []string) {
			if checkMissingFlags(cmd, required) {
				return
			}

			rt := newRuntime()

			docs, err := rt.store.ListDocuments(context.Background(), categoryID)
			if err != nil {
				logrus.Error(err)
				return
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.SetHeader([]string{"ID", "Title", "Alias", "State", "Ordering", "File"})
			for _, doc := range docs {
				table.Append([]string{
					strconv.FormatUint(uint64(doc.ID), 10),
					doc.Title,
					doc.Alias,
					stateLabel(doc.State),
					strconv.Itoa(doc.Ordering),
					doc.FileName,
				})
			}
			table.Render()
		},
	}

	command.Flags().UintVarP(&categoryID, "category-id", "c", 0, "category id (required)")

	return command
}

func setStateCmd(use, short string, state int) *cobra.Command {
	var docIDs []uint
	var userID int64

	var required = []string{"doc-id"}

	command := &cobra.Command{
		Use:     use,
		Short:   short,
		Example: fmt.Sprintf("firedrive %s -d <doc-id>,<doc-id>", use),
		Run: func(cmd *cobra.Command, args []string) {
			if checkMissingFlags(cmd, required) {
				return
			}

			rt := newRuntime()

			err := rt.documents.SetState(context.Background(), actor(userID), docIDs, state)
			if err != nil {
				logrus.Error(err)
				return
			}

			color.Green("%d document(s) updated\n", len(docIDs))
		},
	}

	command.Flags().UintSliceVarP(&docIDs, "doc-id", "d", nil, "document ids (required)")
	command.Flags().Int64VarP(&userID, "user", "u", 0, "acting user id")

	return command
}

func deleteDocCmd() *cobra.Command {
	var docIDs []uint
	var userID int64

	var required = []string{"doc-id"}

	command := &cobra.Command{
		Use:     "delete",
		Short:   "delete trashed documents with their files",
		Example: "firedrive delete -d <doc-id>,<doc-id>",
		Run: func(cmd *cobra.Command, args []string) {
			if checkMissingFlags(cmd, required) {
				return
			}

			rt := newRuntime()

			warnings, err := rt.documents.Delete(context.Background(), actor(userID), docIDs)
			for _, warning := range warnings {
				color.Yellow("%s\n", warning)
			}
			if err != nil {
				logrus.Error(err)
				return
			}

			color.Green("%d document(s) deleted\n", len(docIDs))
		},
	}

	command.Flags().UintSliceVarP(&docIDs, "doc-id", "d", nil, "document ids (required)")
	command.Flags().Int64VarP(&userID, "user", "u", 0, "acting user id")

	return command
}

func stateLabel(state int) string {
	switch state {
	case model.StateTrashed:
		return "trashed"
	case model.StatePublished:
		return "published"
	default:
		return "unpublished"
	}
}

func printField(name, value string) {
	color.Cyan("%s: ", name)
	fmt.Println(value)
}

func checkMissingFlags(cmd *cobra.Command, flags []string) bool {
	var missingFlags []string
	for _, required := range flags {
		if !cmd.Flag(required).Changed {
			missingFlags = append(missingFlags, required)
		}
	}

	if len(missingFlags) > 0 {
		var msg string
		for _, f := range missingFlags {
			msg += fmt.Sprintf("--%s ", f)
		}
		logrus.Errorf("missing required flags: %s", msg)
		return true
	}

	return false
}
