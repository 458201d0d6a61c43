package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/soracane/taskvault/internal/usecase"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// exportTask is the YAML representation of a task.
type exportTask struct {
	Due         *time.Time `yaml:"due,omitempty"`
	Title       string     `yaml:"title"`
	Description string     `yaml:"description,omitempty"`
	ID          int        `yaml:"id"`
	Completed   bool       `yaml:"completed"`
}

// newExportCommand creates the export command.
func newExportCommand(d *deps) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all tasks as YAML",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := d.c.ListTasksUseCase().Execute(cmd.Context(), usecase.ListTasksInput{})
			if err != nil {
				return err
			}

			exported := make([]exportTask, 0, len(out.Tasks))
			for _, task := range out.Tasks {
				exported = append(exported, exportTask{
					ID:          task.ID,
					Title:       task.Title,
					Description: task.Description,
					Completed:   task.Completed,
					Due:         task.Due,
				})
			}

			content, err := yaml.Marshal(exported)
			if err != nil {
				return fmt.Errorf("marshal tasks: %w", err)
			}

			if output == "" {
				_, _ = cmd.OutOrStdout().Write(content)
				return nil
			}
			if err := os.WriteFile(output, content, 0o600); err != nil {
				return fmt.Errorf("write export file: %w", err)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Exported %d task(s) to %s\n", len(exported), output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to a file instead of stdout")

	return cmd
}
