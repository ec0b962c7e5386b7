package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/treestruct/pkg/store"
	"github.com/matzehuels/treestruct/pkg/treestruct"
)

// newStoreCmd creates the store command group for saving, fetching, listing,
// and deleting documents in the configured backend.
func newStoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "store",
		Short: "Manage tree documents in the configured backend",
	}
	cmd.AddCommand(newStoreSaveCmd())
	cmd.AddCommand(newStoreGetCmd())
	cmd.AddCommand(newStoreListCmd())
	cmd.AddCommand(newStoreDeleteCmd())
	return cmd
}

func newStoreSaveCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "save [file]",
		Short: "Save a forest file as a new document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			roots, err := treestruct.ReadFile[any](args[0])
			if err != nil {
				return err
			}
			if len(roots) == 0 {
				return fmt.Errorf("%s contains no trees", args[0])
			}

			cfg, err := loadConfig(ctx)
			if err != nil {
				return err
			}
			st, err := openStore(ctx, cfg)
			if err != nil {
				return err
			}
			defer st.Close()

			if name == "" {
				name = trimExt(filepath.Base(args[0]))
			}
			doc := store.NewDocument(name, roots[0])
			if len(roots) > 1 {
				trees := make([]treestruct.Dict[any], 0, len(roots))
				for _, root := range roots {
					trees = append(trees, treestruct.ToDict(root, treestruct.Identity[any])...)
				}
				doc.Trees = trees
			}
			if err := st.Put(ctx, doc); err != nil {
				return err
			}

			printSuccess("saved %q (%d tree(s))", doc.Name, len(doc.Trees))
			printKeyValue("id", doc.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "document name (defaults to the file name)")
	return cmd
}

func newStoreGetCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "get [id]",
		Short: "Fetch a document and print it as forest JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := loadConfig(ctx)
			if err != nil {
				return err
			}
			st, err := openStore(ctx, cfg)
			if err != nil {
				return err
			}
			defer st.Close()

			doc, err := st.Get(ctx, args[0])
			if err != nil {
				return err
			}
			data, err := json.MarshalIndent(doc.Trees, "", "  ")
			if err != nil {
				return fmt.Errorf("encode document %s: %w", doc.ID, err)
			}

			if output == "" {
				fmt.Println(string(data))
				return nil
			}
			if err := os.WriteFile(output, append(data, '\n'), 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			printSuccess("fetched %q", doc.Name)
			printFile(output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write to a file instead of stdout")
	return cmd
}

func newStoreListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored documents",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := loadConfig(ctx)
			if err != nil {
				return err
			}
			st, err := openStore(ctx, cfg)
			if err != nil {
				return err
			}
			defer st.Close()

			docs, err := st.List(ctx)
			if err != nil {
				return err
			}
			if len(docs) == 0 {
				printInfo("no documents stored")
				return nil
			}

			fmt.Println(StyleTitle.Render(fmt.Sprintf("%d document(s)", len(docs))))
			for _, doc := range docs {
				fmt.Println()
				printInfo("%s", doc.Name)
				printDetail("id:      %s", doc.ID)
				printDetail("trees:   %d", len(doc.Trees))
				printDetail("updated: %s", doc.UpdatedAt.Format("2006-01-02 15:04:05"))
			}
			return nil
		},
	}
}

func newStoreDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [id...]",
		Short: "Delete stored documents by ID",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := loadConfig(ctx)
			if err != nil {
				return err
			}
			st, err := openStore(ctx, cfg)
			if err != nil {
				return err
			}
			defer st.Close()

			var failed []string
			for _, id := range args {
				if err := st.Delete(ctx, id); err != nil {
					printError("%s: %v", id, err)
					failed = append(failed, id)
					continue
				}
				printSuccess("deleted %s", id)
			}
			if len(failed) > 0 {
				return fmt.Errorf("failed to delete: %s", strings.Join(failed, ", "))
			}
			return nil
		},
	}
}
