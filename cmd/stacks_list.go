package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rmarchant/codabind/internal/domain/binding"
	"github.com/rmarchant/codabind/internal/presentation"
)

var (
	listStack string
	listRole  string
)

var stacksListCmd = &cobra.Command{
	Use:   "stacks:list",
	Short: "List all registered coding stack bindings",
	Long: `List all registered coding stack bindings as JSON, in registration
order.

Each binding is one registered native type: a factory, encoder, or decoder
for a specific (stack, field) pair. Use --stack to filter by stack
identifier and --role to filter by binding role.

Examples:
  # List all bindings
  codabind stacks:list

  # Filter by stack identifier
  codabind stacks:list --stack full_vector_encoder

  # Filter by role
  codabind stacks:list --role factory

  # Parse specific fields with jq
  codabind stacks:list | jq '.[].name'`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var bindings []*binding.Binding

		hasStack := cmd.Flags().Changed("stack")
		hasRole := cmd.Flags().Changed("role")

		role := binding.Role(listRole)
		if hasRole && !role.Valid() {
			return fmt.Errorf("unknown role %q (want factory, encoder, or decoder)", listRole)
		}

		switch {
		case hasStack && hasRole:
			bindings = filterByRole(catalogService.GetByStack(listStack), role)
		case hasStack:
			bindings = catalogService.GetByStack(listStack)
		case hasRole:
			bindings = catalogService.GetByRole(role)
		default:
			bindings = catalogService.List()
		}

		formatter := presentation.NewFormatter(os.Stdout)
		dtos := presentation.FromDomainBindings(bindings)

		return formatter.FormatBindings(dtos)
	},
}

func init() {
	stacksListCmd.Flags().StringVarP(&listStack, "stack", "s", "",
		"Filter by stack identifier (e.g. full_vector_encoder)")
	stacksListCmd.Flags().StringVarP(&listRole, "role", "r", "",
		"Filter by role: factory, encoder, or decoder")
	rootCmd.AddCommand(stacksListCmd)
}

// filterByRole keeps bindings with the given role, in registration order
func filterByRole(bs []*binding.Binding, role binding.Role) []*binding.Binding {
	result := make([]*binding.Binding, 0)
	for _, b := range bs {
		if b.Role() == role {
			result = append(result, b)
		}
	}
	return result
}
