package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/moneypath/internal/access"
)

var accessCmd = &cobra.Command{
	Use:   "access",
	Short: "Inspect or grant premium access",
}

var accessShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the learner's premium entitlement",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := buildServices(cmd, buildOpts{})
		if err != nil {
			return err
		}
		defer svc.close()

		ent, err := svc.access.Check(cmd.Context(), svc.identity)
		if err != nil {
			return err
		}
		fmt.Printf("User:     %s\n", svc.identity.UserID)
		fmt.Printf("Premium:  %v\n", ent.Premium)
		fmt.Printf("Reason:   %s\n", ent.Reason)
		if ent.Until != nil {
			fmt.Printf("Until:    %s\n", ent.Until.Local().Format("2006-01-02 15:04"))
		}
		return nil
	},
}

var accessGrantCmd = &cobra.Command{
	Use:   "grant",
	Short: "Record a subscription for the learner",
	RunE: func(cmd *cobra.Command, args []string) error {
		status, _ := cmd.Flags().GetString("status")
		plan, _ := cmd.Flags().GetString("plan")
		days, _ := cmd.Flags().GetInt("days")

		switch status {
		case access.StatusActive, access.StatusTrialing, access.StatusPastDue,
			access.StatusCanceled, access.StatusIncomplete, access.StatusUnpaid:
		default:
			return fmt.Errorf("unknown subscription status %q", status)
		}

		svc, err := buildServices(cmd, buildOpts{})
		if err != nil {
			return err
		}
		defer svc.close()

		var until *time.Time
		if days > 0 {
			t := time.Now().AddDate(0, 0, days)
			until = &t
		}
		if err := svc.access.Grant(cmd.Context(), svc.identity.UserID, status, plan, until); err != nil {
			return err
		}
		fmt.Printf("Recorded %s subscription for %s.\n", status, svc.identity.UserID)
		return nil
	},
}

func init() {
	accessGrantCmd.Flags().String("status", access.StatusActive, "Subscription status")
	accessGrantCmd.Flags().String("plan", "monthly", "Plan name")
	accessGrantCmd.Flags().Int("days", 30, "Days until the current period ends (0 for open-ended)")

	accessCmd.AddCommand(accessShowCmd)
	accessCmd.AddCommand(accessGrantCmd)
}
