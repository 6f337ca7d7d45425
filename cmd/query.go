package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/haystacksec/kustodian/internal/message"
	"github.com/haystacksec/kustodian/pkg/templates"
	"github.com/spf13/cobra"
)

var (
	promptFlag      string
	templateFlag    string
	interactiveFlag bool
	paramFlags      []string
	templateDirFlag string
)

var queryCmd = &cobra.Command{
	Use:     "query",
	Aliases: []string{"kql"},
	Short:   "KQL query generation commands",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

var queryGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a KQL query from a prompt, a template or interactively",
	RunE: func(cmd *cobra.Command, args []string) error {
		modes := 0
		for _, set := range []bool{promptFlag != "", templateFlag != "", interactiveFlag} {
			if set {
				modes++
			}
		}
		if modes != 1 {
			return invalidFlags("exactly one of --prompt, --template or --interactive is required")
		}

		overrides, err := parseParams(paramFlags)
		if err != nil {
			return err
		}

		resolver, err := newQueryResolver()
		if err != nil {
			return err
		}

		var resolved *templates.ResolvedQuery
		switch {
		case promptFlag != "":
			resolved, err = resolver.ResolvePrompt(promptFlag, overrides)
		case templateFlag != "":
			resolved, err = resolver.ResolveTemplate(templateFlag, overrides)
		default:
			resolved, err = interactiveGenerate(resolver, cmd.InOrStdin(), overrides)
		}
		if err != nil {
			return err
		}

		message.Section("Generated KQL Query (%s)", resolved.TemplateID)
		return emitText("query-generate", resolved.Query)
	},
}

var queryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available KQL query templates",
	RunE: func(cmd *cobra.Command, args []string) error {
		resolver, err := newQueryResolver()
		if err != nil {
			return err
		}

		message.Section("Available KQL Query Templates")
		loader := resolver.Loader()
		for _, id := range loader.IDs() {
			tmpl, _ := loader.GetTemplate(id)
			fmt.Printf("%s [%s]\n    %s\n", message.Emphasize(tmpl.ID), tmpl.Category, tmpl.Description)
		}
		return nil
	},
}

func newQueryResolver() (*templates.Resolver, error) {
	loader, err := templates.NewTemplateLoader()
	if err != nil {
		return nil, err
	}
	if err := loader.LoadUserTemplates(templateDirFlag); err != nil {
		return nil, err
	}
	return templates.NewResolverFromLoader(loader)
}

// parseParams turns repeated key=value flags into an override map
func parseParams(params []string) (map[string]string, error) {
	overrides := make(map[string]string, len(params))
	for _, param := range params {
		key, value, found := strings.Cut(param, "=")
		if !found || key == "" {
			return nil, invalidFlags("invalid --param %q, expected key=value", param)
		}
		overrides[key] = value
	}
	return overrides, nil
}

// interactiveGenerate walks the user through template selection and
// parameter entry. Explicit --param overrides still beat entered
// values.
func interactiveGenerate(resolver *templates.Resolver, in io.Reader, overrides map[string]string) (*templates.ResolvedQuery, error) {
	loader := resolver.Loader()
	reader := bufio.NewScanner(in)

	message.Section("KQL Query Generator - Interactive Mode")
	for _, id := range loader.IDs() {
		tmpl, _ := loader.GetTemplate(id)
		fmt.Printf("  %s: %s\n", message.Emphasize(tmpl.ID), tmpl.Description)
	}

	fmt.Print("\nEnter template name: ")
	if !reader.Scan() {
		return nil, fmt.Errorf("no template selected")
	}
	id := strings.TrimSpace(reader.Text())

	tmpl, ok := loader.GetTemplate(id)
	if !ok {
		return nil, &templates.UnknownTemplateError{ID: id, ValidIDs: loader.IDs()}
	}

	message.Info("Configuring '%s' query", tmpl.ID)
	message.Info("%s", tmpl.Description)

	entered := make(map[string]string)
	for _, param := range tmpl.Parameters {
		fmt.Printf("Enter %s [default: %s]: ", param.Name, param.Default)
		if !reader.Scan() {
			break
		}
		if value := strings.TrimSpace(reader.Text()); value != "" {
			entered[param.Name] = value
		}
	}

	for key, value := range overrides {
		entered[key] = value
	}

	return resolver.ResolveTemplate(tmpl.ID, entered)
}

func init() {
	queryGenerateCmd.Flags().StringVarP(&promptFlag, "prompt", "p", "", "natural language prompt to generate a query from")
	queryGenerateCmd.Flags().StringVarP(&templateFlag, "template", "t", "", "template name to generate a query from")
	queryGenerateCmd.Flags().BoolVarP(&interactiveFlag, "interactive", "i", false, "run in interactive mode")
	queryGenerateCmd.Flags().StringArrayVar(&paramFlags, "param", nil, "template parameter override (key=value, repeatable)")
	queryGenerateCmd.Flags().StringVar(&templateDirFlag, "template-dir", "", "directory with additional query templates")
	queryListCmd.Flags().StringVar(&templateDirFlag, "template-dir", "", "directory with additional query templates")

	queryCmd.AddCommand(queryGenerateCmd)
	queryCmd.AddCommand(queryListCmd)
	rootCmd.AddCommand(queryCmd)
}
