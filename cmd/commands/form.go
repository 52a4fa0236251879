package commands

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/otdb/otdb-terminal/internal/cli"
	"github.com/otdb/otdb-terminal/pkg/api"
	"github.com/otdb/otdb-terminal/pkg/files"
	"github.com/otdb/otdb-terminal/pkg/form"
	"github.com/otdb/otdb-terminal/pkg/models"
	"github.com/otdb/otdb-terminal/pkg/tui"
)

type formOptions struct {
	offline string
	copy    bool
	noTUI   bool
	values  []string
}

// NewFormCommand creates the form command
func NewFormCommand() *cobra.Command {
	opts := &formOptions{}

	cmd := &cobra.Command{
		Use:   "form <name|file>",
		Short: "Fill in a form",
		Long: `Open a form definition in the terminal UI and print the submitted values.

The form is looked up as a path first, then in .otdb/forms.

Examples:
  # Fill in the example mappool form
  otdb form mappool

  # Prefill fields and submit without the UI
  otdb form tournament --no-tui --set name-input="My Cup" --set abbreviation-input=MC

  # Copy the submission to the clipboard as yaml
  otdb form mappool --copy`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runForm(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.offline, "offline", "", "Answer searches from a JSON option file instead of the API")
	cmd.Flags().BoolVar(&opts.copy, "copy", false, "Copy the submitted values to the clipboard as yaml")
	cmd.Flags().BoolVar(&opts.noTUI, "no-tui", false, "Submit the prefilled values without opening the UI")
	cmd.Flags().StringArrayVar(&opts.values, "set", nil, "Prefill a field (id=value, repeatable)")
	return cmd
}

func runForm(cmd *cobra.Command, name string, opts *formOptions) error {
	path, err := files.ResolveFormPath(name)
	if err != nil {
		return err
	}
	def, err := files.LoadForm(path)
	if err != nil {
		return err
	}

	ctx := cli.NewCommandContext()
	settings := ctx.LoadSettingsWithDefault()
	logger, closer, err := ctx.OpenLogger()
	if err != nil {
		return err
	}
	defer closer.Close()

	searcher, err := ctx.Searcher(opts.offline, logger)
	if err != nil {
		return err
	}

	m, err := buildForm(def, searcher, logger, cmd)
	if err != nil {
		return fmt.Errorf("failed to build form %s: %w", name, err)
	}
	lookup := func(id, query string) ([]form.Option, error) {
		kind, _ := def.SearchKindFor(id)
		return searcher.Search(cmd.Context(), kind, query)
	}
	if err := prefill(m, opts.values, lookup); err != nil {
		return err
	}

	var values []form.FieldValue
	if opts.noTUI {
		values, err = submitDirect(name, m)
		if err != nil {
			return err
		}
	} else {
		title := def.Title
		if title == "" {
			title = name
		}
		model := tui.NewFormModel(title, m,
			tui.WithDropdownRows(settings.UI.DropdownRows),
			tui.WithHelp(settings.UI.ShowHelp),
			tui.WithLogger(logger),
		)
		result, err := tui.Run(model)
		if err != nil {
			return fmt.Errorf("failed to start the terminal user interface: %w", err)
		}
		if !result.Submitted {
			cli.Infof("Form %s cancelled", name)
			return nil
		}
		values = result.Values
	}

	sub := cli.NewSubmission(name, m, values)
	if err := sub.Write(cmd.OutOrStdout(), outputFormat(cmd, settings)); err != nil {
		return err
	}

	if opts.copy {
		out, err := sub.YAML()
		if err != nil {
			return fmt.Errorf("failed to encode values: %w", err)
		}
		if err := clipboard.WriteAll(out); err != nil {
			return fmt.Errorf("failed to copy to clipboard: %w", err)
		}
		cli.Successf("Copied %s submission to clipboard", name)
	}
	return nil
}

// buildForm sets the form up and binds every search input to its
// collection.
func buildForm(def *models.FormDefinition, searcher api.Searcher, logger *log.Logger, cmd *cobra.Command) (*form.Manager, error) {
	m, err := def.Build(form.WithLogger(logger), form.WithContext(cmd.Context()))
	if err != nil {
		return nil, err
	}

	for _, s := range form.QueryAs[*form.TextSearch](m, "") {
		kind, ok := def.SearchKindFor(s.ID())
		if !ok {
			return nil, fmt.Errorf("search input %s has no collection in 'searches'", s.ID())
		}
		s.BindSearch(api.SearchFunc(searcher, kind))
	}
	return m, nil
}

// prefill applies id=value pairs. Dropdowns pick the option with that
// label; a multi dropdown takes a comma separated list. Search inputs
// pick the result of lookup whose label matches.
func prefill(m *form.Manager, pairs []string, lookup func(id, query string) ([]form.Option, error)) error {
	for _, pair := range pairs {
		id, value, ok := strings.Cut(pair, "=")
		if !ok {
			return fmt.Errorf("invalid --set %q (expected id=value)", pair)
		}
		input, err := m.GetRequired(id)
		if err != nil {
			return err
		}

		switch in := input.(type) {
		case *form.TextSearch:
			opts, err := lookup(id, value)
			if err != nil {
				return fmt.Errorf("input %s: search failed: %w", id, err)
			}
			var found bool
			for _, opt := range opts {
				if strings.EqualFold(opt.Label, value) {
					in.AddOption(opt).Pick()
					found = true
					break
				}
			}
			if !found {
				return fmt.Errorf("input %s: no result matches %q", id, value)
			}
		case *form.TextDropdown:
			labels := []string{value}
			if in.Multi() {
				labels = strings.Split(value, ",")
			}
			for _, label := range labels {
				item := in.Item(strings.TrimSpace(label))
				if item == nil {
					return fmt.Errorf("input %s has no option %q", id, label)
				}
				item.Pick()
			}
		case *form.TextInput:
			in.SetValue(value)
		default:
			return fmt.Errorf("input %s cannot be set", id)
		}
	}
	return nil
}

// submitDirect clicks submit as the UI would and returns the values.
func submitDirect(name string, m *form.Manager) ([]form.FieldValue, error) {
	submit := m.Submit()
	if submit == nil || !submit.Click() {
		var invalid []string
		for _, in := range m.Inputs() {
			if !in.CheckValueValidity() {
				invalid = append(invalid, in.ID())
			}
		}
		return nil, &cli.IncompleteFormError{Form: name, Invalid: invalid}
	}
	return m.Values(), nil
}
