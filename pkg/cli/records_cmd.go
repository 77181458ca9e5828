package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"sheetregistry/internal/domain"
)

func newRecordsCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "records",
		Short: "Manage registry records",
	}
	cmd.AddCommand(newRecordsListCmd(opts))
	cmd.AddCommand(newRecordsCreateCmd(opts))
	cmd.AddCommand(newRecordsUpdateCmd(opts))
	cmd.AddCommand(newRecordsDeleteCmd(opts))
	return cmd
}

func newRecordsListCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all records, active and inactive",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client := NewClient(opts.host, opts.token)
			records, err := client.ListRecords(cmd.Context())
			if err != nil {
				return err
			}
			if opts.output == "json" {
				return PrintJSON(cmd.OutOrStdout(), records)
			}
			return PrintRecordsTable(cmd.OutOrStdout(), records)
		},
	}
}

// recordFlags registers the record field flags shared by create and update.
func recordFlags(cmd *cobra.Command, in *domain.RecordInput) {
	cmd.Flags().StringVar(&in.FullName, "full-name", "", "full name (required)")
	cmd.Flags().StringVar(&in.PopulationID, "population-id", "", "population id (required)")
	cmd.Flags().StringVar(&in.FamilyID, "family-id", "", "family id")
	cmd.Flags().StringVar(&in.Gender, "gender", "", "gender")
	cmd.Flags().StringVar(&in.DateOfBirth, "date-of-birth", "", "date of birth")
	cmd.Flags().StringVar(&in.PlaceOfBirth, "place-of-birth", "", "place of birth")
	cmd.Flags().StringVar(&in.Religion, "religion", "", "religion")
	cmd.Flags().StringVar(&in.BloodType, "blood-type", "", "blood type")
}

func newRecordsCreateCmd(opts *rootOptions) *cobra.Command {
	var in domain.RecordInput
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a record",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client := NewClient(opts.host, opts.token)
			rec, err := client.CreateRecord(cmd.Context(), &in)
			if err != nil {
				return err
			}
			if opts.output == "json" {
				return PrintJSON(cmd.OutOrStdout(), rec)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created record %d\n", rec.ID)
			return nil
		},
	}
	recordFlags(cmd, &in)
	return cmd
}

func newRecordsUpdateCmd(opts *rootOptions) *cobra.Command {
	var in domain.RecordInput
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Overwrite a record (reactivates soft-deleted records)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid id %q", args[0])
			}
			client := NewClient(opts.host, opts.token)
			if err := client.UpdateRecord(cmd.Context(), id, &in); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated record %d\n", id)
			return nil
		},
	}
	recordFlags(cmd, &in)
	return cmd
}

func newRecordsDeleteCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Soft-delete a record (marks it inactive, the row stays)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid id %q", args[0])
			}
			client := NewClient(opts.host, opts.token)
			if err := client.DeleteRecord(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deactivated record %d\n", id)
			return nil
		},
	}
}
