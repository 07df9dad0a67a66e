package shell

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/felixgeelhaar/todo/adapter/cli"
	"github.com/felixgeelhaar/todo/adapter/cli/task"
	"github.com/felixgeelhaar/todo/internal/productivity/application/commands"
	"github.com/felixgeelhaar/todo/internal/productivity/application/queries"
	"github.com/felixgeelhaar/todo/pkg/observability"
	"github.com/spf13/cobra"
)

const menuText = `
--- To-Do Application Menu ---
1. Add Task
2. View All Tasks
3. Update Task
4. Delete Task
5. Mark Task Status
6. Show Menu
7. Exit
----------------------------`

// clearMarker clears the description when given as the new description.
const clearMarker = "-"

// RunMenu is the root command action: the numbered menu session.
func RunMenu(cmd *cobra.Command, args []string) error {
	a, err := cli.AppFromContext(cmd.Context())
	if err != nil {
		return err
	}
	return NewMenu(a, cmd.InOrStdin(), cmd.OutOrStdout()).Run(cmd.Context())
}

// Menu is the numbered menu session. It calls the lifecycle handlers directly.
type Menu struct {
	app   *cli.App
	in    io.Reader
	out   io.Writer
	lines *lineReader
}

// NewMenu creates a menu session over in and out.
func NewMenu(a *cli.App, in io.Reader, out io.Writer) *Menu {
	return &Menu{app: a, in: in, out: out}
}

// Run shows the menu and handles choices until Exit, end of input or
// cancellation of ctx.
func (m *Menu) Run(ctx context.Context) error {
	m.lines = newLineReader(m.in)
	defer m.lines.close()

	fmt.Fprintln(m.out, "Welcome to the To-Do Application!")
	fmt.Fprintln(m.out, "Please choose an option from the menu.")
	m.showMenu()

	for {
		choice, err := m.prompt(ctx, "\nEnter your choice: ")
		if err != nil {
			fmt.Fprintln(m.out)
			return endOfSession(m.out, err)
		}

		opCtx := observability.WithCorrelationID(ctx, "")
		switch strings.TrimSpace(choice) {
		case "1":
			err = m.addTask(opCtx)
		case "2":
			m.viewTasks(opCtx)
		case "3":
			err = m.updateTask(opCtx)
		case "4":
			err = m.deleteTask(opCtx)
		case "5":
			err = m.markTask(opCtx)
		case "6":
			m.showMenu()
		case "7":
			fmt.Fprintln(m.out, "Exiting To-Do Application. Goodbye!")
			return nil
		default:
			task.RenderErrorMessage(m.out, "Invalid choice. Please enter a number from the menu.")
		}
		if err != nil {
			fmt.Fprintln(m.out)
			return endOfSession(m.out, err)
		}
	}
}

func (m *Menu) showMenu() {
	fmt.Fprintln(m.out, menuText)
}

func (m *Menu) prompt(ctx context.Context, label string) (string, error) {
	fmt.Fprint(m.out, label)
	return m.lines.next(ctx)
}

// The actions below return only input errors; service failures are printed.

func (m *Menu) addTask(ctx context.Context) error {
	title, err := m.prompt(ctx, "Enter task title: ")
	if err != nil {
		return err
	}
	description, err := m.prompt(ctx, "Enter task description (optional): ")
	if err != nil {
		return err
	}

	cmd := commands.CreateTaskCommand{Title: title}
	if strings.TrimSpace(description) != "" {
		cmd.Description = &description
	}

	created, err := m.app.CreateTaskHandler.Handle(ctx, cmd)
	if err != nil {
		task.RenderError(m.out, task.WrapError("add", "", err))
		return nil
	}
	task.RenderSuccess(m.out, "Task '%s' added successfully with ID: %s", created.Title(), created.ID())
	return nil
}

func (m *Menu) viewTasks(ctx context.Context) {
	task.RenderTaskList(m.out, m.app.ListTasksHandler.Handle(ctx, queries.ListTasksQuery{}))
}

func (m *Menu) updateTask(ctx context.Context) error {
	id, err := m.prompt(ctx, "Enter the ID of the task to update: ")
	if err != nil {
		return err
	}
	title, err := m.prompt(ctx, "Enter new title (leave empty to keep current): ")
	if err != nil {
		return err
	}
	description, err := m.prompt(ctx, fmt.Sprintf("Enter new description (leave empty to keep current, '%s' to clear): ", clearMarker))
	if err != nil {
		return err
	}

	id = strings.TrimSpace(id)
	cmd := commands.ModifyTaskCommand{TaskID: id}
	if strings.TrimSpace(title) != "" {
		cmd.Title = &title
	}
	switch d := strings.TrimSpace(description); {
	case d == clearMarker:
		cmd.Description = commands.ClearDescription()
	case d != "":
		cmd.Description = commands.SetDescription(description)
	}

	if cmd.Title == nil && cmd.Description.IsKeep() {
		fmt.Fprintln(m.out, "No changes provided. Task not updated.")
		return nil
	}

	updated, err := m.app.ModifyTaskHandler.Handle(ctx, cmd)
	if err != nil {
		task.RenderError(m.out, task.WrapError("update", id, err))
		return nil
	}
	task.RenderSuccess(m.out, "Task '%s' updated successfully.", updated.ID())
	return nil
}

func (m *Menu) deleteTask(ctx context.Context) error {
	id, err := m.prompt(ctx, "Enter the ID of the task to delete: ")
	if err != nil {
		return err
	}

	id = strings.TrimSpace(id)
	if err := m.app.RemoveTaskHandler.Handle(ctx, commands.RemoveTaskCommand{TaskID: id}); err != nil {
		task.RenderError(m.out, task.WrapError("delete", id, err))
		return nil
	}
	task.RenderSuccess(m.out, "Task '%s' deleted successfully.", id)
	return nil
}

func (m *Menu) markTask(ctx context.Context) error {
	id, err := m.prompt(ctx, "Enter the ID of the task to mark: ")
	if err != nil {
		return err
	}
	status, err := m.prompt(ctx, "Mark as (complete/incomplete): ")
	if err != nil {
		return err
	}

	id = strings.TrimSpace(id)
	complete, err := task.ParseStatus(status)
	if err != nil {
		task.RenderError(m.out, task.WrapError("mark", id, err))
		return nil
	}

	updated, err := m.app.SetTaskStatusHandler.Handle(ctx, commands.SetTaskStatusCommand{
		TaskID:   id,
		Complete: complete,
	})
	if err != nil {
		task.RenderError(m.out, task.WrapError("mark", id, err))
		return nil
	}
	task.RenderSuccess(m.out, "Task '%s' marked as %s.", updated.ID(), task.StatusText(updated.IsComplete()))
	return nil
}
