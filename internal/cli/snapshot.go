package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/graftlabs/graft/pkg/graph/text"
	"github.com/graftlabs/graft/pkg/store"
)

// newSnapshotCmd creates the snapshot command group for saving, loading,
// listing, and deleting named graph snapshots in the configured store.
func newSnapshotCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Manage named graph snapshots",
		Long: `Manage named graph snapshots in the configured store backend.

The backend (file, redis, mongo, or null) is selected in the config file;
the default is a per-user file store. Saved payloads are canonical graph
text, so "snapshot load" output matches "graft fmt" output.`,
	}

	cmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default platform config dir)")

	cmd.AddCommand(newSnapshotSaveCmd(&configPath))
	cmd.AddCommand(newSnapshotLoadCmd(&configPath))
	cmd.AddCommand(newSnapshotListCmd(&configPath))
	cmd.AddCommand(newSnapshotDeleteCmd(&configPath))

	return cmd
}

// withStore opens the configured backend, runs fn, and closes the backend.
func withStore(cmd *cobra.Command, configPath string, fn func(st store.Store) error) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	st, err := openStore(cmd.Context(), cfg)
	if err != nil {
		return fmt.Errorf("open %s store: %w", cfg.Store.Backend, err)
	}
	defer st.Close()
	return fn(st)
}

func newSnapshotSaveCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "save <name> <file>",
		Short: "Save a graph file as a named snapshot",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			name := args[0]

			g, err := readGraphArg(args[1])
			if err != nil {
				return err
			}
			data, err := text.Marshal(g, text.Strings())
			if err != nil {
				return err
			}

			return withStore(cmd, *configPath, func(st store.Store) error {
				p := newProgress(logger)
				snap, err := st.Save(cmd.Context(), name, data)
				if err != nil {
					return fmt.Errorf("save snapshot %q: %w", name, err)
				}
				p.done(fmt.Sprintf("Saved snapshot %q", name))
				printSuccess("Saved %q (%d bytes)", snap.Name, len(snap.Data))
				printDetail("id: %s", snap.ID)
				return nil
			})
		},
	}
}

func newSnapshotLoadCmd(configPath *string) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "load <name>",
		Short: "Load a snapshot and write its graph text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			return withStore(cmd, *configPath, func(st store.Store) error {
				snap, err := st.Load(cmd.Context(), name)
				if errors.Is(err, store.ErrSnapshotNotFound) {
					printError("No snapshot named %q", name)
					return err
				}
				if err != nil {
					return fmt.Errorf("load snapshot %q: %w", name, err)
				}
				return writeOutput(output, snap.Data)
			})
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	return cmd
}

func newSnapshotListCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all snapshots in the store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd, *configPath, func(st store.Store) error {
				snaps, err := st.List(cmd.Context())
				if err != nil {
					return fmt.Errorf("list snapshots: %w", err)
				}
				if len(snaps) == 0 {
					printInfo("No snapshots")
					printNextStep("Save one with", "graft snapshot save <name> <file>")
					return nil
				}
				fmt.Println(StyleTitle.Render("Snapshots"))
				for _, s := range snaps {
					printKeyValue(s.Name, fmt.Sprintf("%d bytes, saved %s", len(s.Data), s.SavedAt.Format("2006-01-02 15:04:05")))
				}
				return nil
			})
		},
	}
}

func newSnapshotDeleteCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			return withStore(cmd, *configPath, func(st store.Store) error {
				err := st.Delete(cmd.Context(), name)
				if errors.Is(err, store.ErrSnapshotNotFound) {
					printError("No snapshot named %q", name)
					return err
				}
				if err != nil {
					return fmt.Errorf("delete snapshot %q: %w", name, err)
				}
				printSuccess("Deleted %q", name)
				return nil
			})
		},
	}
}
