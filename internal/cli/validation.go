package cli

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/spf13/cobra"
)

var digitsOnly = regexp.MustCompile(`^\d+$`)

// parseEntityID parses a numeric id argument. Errors name the entity so
// that "order assign 3 abc" says which argument is wrong.
func parseEntityID(arg, entityType string) (int64, error) {
	if !digitsOnly.MatchString(arg) {
		return 0, fmt.Errorf("invalid %s ID '%s'. IDs are whole numbers, e.g. 12", entityType, arg)
	}
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s ID '%s': %w", entityType, arg, err)
	}
	return id, nil
}

// changedString returns the flag value only when the user set it.
func changedString(cmd *cobra.Command, name string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetString(name)
	return &v
}

func changedInt64(cmd *cobra.Command, name string) *int64 {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetInt64(name)
	return &v
}

func changedFloat64(cmd *cobra.Command, name string) *float64 {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetFloat64(name)
	return &v
}
