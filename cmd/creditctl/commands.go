package main

import (
	"context"
	"errors"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/mattedesign/figmant-759992b3-sub008/internal/config"
	"github.com/mattedesign/figmant-759992b3-sub008/internal/domain"
)

//go:generate mockgen -source=commands.go -destination=mock_commands.go -package=main

type Credits interface {
	GetBalance(ctx context.Context, userID int) (*domain.CreditBalance, error)
	GetTransactions(ctx context.Context, userID int, limit int) ([]domain.CreditTransaction, error)
	PreviewTransaction(ctx context.Context, userID int, txType domain.TransactionType, amount int) (*domain.CreditBalance, error)
	ProcessTransaction(ctx context.Context, userID int, txType domain.TransactionType, amount int, description string, reference *string, createdBy *int) (*domain.CreditBalance, error)
}

type Users interface {
	Promote(ctx context.Context, userID int) (*domain.User, error)
}

type backend struct {
	credits Credits
	users   Users
	close   func()
}

type connectFunc func(ctx context.Context, cfg *config.Config) (*backend, error)

var errUserRequired = errors.New("--user must be a positive user id")

func newRootCmd(connect connectFunc) *cobra.Command {
	var b *backend

	root := &cobra.Command{
		Use:           "creditctl",
		Short:         "Inspect and adjust design-analysis credits",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			b, err = connect(cmd.Context(), config.Load())
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if b != nil && b.close != nil {
				b.close()
			}
		},
	}

	root.AddCommand(
		newBalanceCmd(func() *backend { return b }),
		newHistoryCmd(func() *backend { return b }),
		newAdjustCmd(func() *backend { return b }),
		newPromoteCmd(func() *backend { return b }),
	)
	return root
}

func newBalanceCmd(deps func() *backend) *cobra.Command {
	var userID int

	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Show a user's credit balance",
		RunE: func(cmd *cobra.Command, args []string) error {
			if userID <= 0 {
				return errUserRequired
			}
			balance, err := deps().credits.GetBalance(cmd.Context(), userID)
			if err != nil {
				return fmt.Errorf("get balance: %w", err)
			}
			printBalance(cmd, balance)
			return nil
		},
	}
	cmd.Flags().IntVar(&userID, "user", 0, "user id")
	return cmd
}

func newHistoryCmd(deps func() *backend) *cobra.Command {
	var (
		userID int
		limit  int
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List a user's credit transactions, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			if userID <= 0 {
				return errUserRequired
			}
			txs, err := deps().credits.GetTransactions(cmd.Context(), userID, limit)
			if err != nil {
				return fmt.Errorf("get transactions: %w", err)
			}
			if len(txs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no transactions")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "CREATED\tTYPE\tAMOUNT\tREFERENCE\tDESCRIPTION")
			for _, tx := range txs {
				ref := "-"
				if tx.Reference != nil {
					ref = *tx.Reference
				}
				fmt.Fprintf(w, "%s\t%s\t%+d\t%s\t%s\n",
					tx.CreatedAt.Format(time.RFC3339), tx.Type, tx.Amount, ref, tx.Description)
			}
			return w.Flush()
		},
	}
	cmd.Flags().IntVar(&userID, "user", 0, "user id")
	cmd.Flags().IntVar(&limit, "limit", 20, "maximum number of transactions")
	return cmd
}

func newAdjustCmd(deps func() *backend) *cobra.Command {
	var (
		userID  int
		amount  int
		txType  string
		reason  string
		adminID int
		dryRun  bool
	)

	cmd := &cobra.Command{
		Use:   "adjust",
		Short: "Grant credits as an admin adjustment or refund",
		RunE: func(cmd *cobra.Command, args []string) error {
			if userID <= 0 {
				return errUserRequired
			}
			t := domain.TransactionType(txType)
			if t != domain.TransactionAdminAdjustment && t != domain.TransactionRefund {
				return fmt.Errorf("--type must be %s or %s", domain.TransactionAdminAdjustment, domain.TransactionRefund)
			}
			if reason == "" {
				return errors.New("--reason is required")
			}

			if dryRun {
				balance, err := deps().credits.PreviewTransaction(cmd.Context(), userID, t, amount)
				if err != nil {
					return fmt.Errorf("preview adjustment: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), "dry run, nothing recorded")
				printBalance(cmd, balance)
				return nil
			}

			var createdBy *int
			if adminID > 0 {
				createdBy = &adminID
			}
			balance, err := deps().credits.ProcessTransaction(cmd.Context(), userID, t, amount, reason, nil, createdBy)
			if err != nil {
				return fmt.Errorf("adjust credits: %w", err)
			}
			printBalance(cmd, balance)
			return nil
		},
	}
	cmd.Flags().IntVar(&userID, "user", 0, "user id")
	cmd.Flags().IntVar(&amount, "amount", 0, "credits to grant")
	cmd.Flags().StringVar(&txType, "type", string(domain.TransactionAdminAdjustment), "admin_adjustment or refund")
	cmd.Flags().StringVar(&reason, "reason", "", "description stored on the transaction")
	cmd.Flags().IntVar(&adminID, "by", 0, "id of the admin performing the change")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the resulting balance without recording it")
	return cmd
}

func newPromoteCmd(deps func() *backend) *cobra.Command {
	var userID int

	cmd := &cobra.Command{
		Use:   "promote",
		Short: "Give a user the admin role",
		RunE: func(cmd *cobra.Command, args []string) error {
			if userID <= 0 {
				return errUserRequired
			}
			user, err := deps().users.Promote(cmd.Context(), userID)
			if err != nil {
				return fmt.Errorf("promote user: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "user %d (%s) is now %s\n", user.ID, user.Login, user.Role)
			return nil
		},
	}
	cmd.Flags().IntVar(&userID, "user", 0, "user id")
	return cmd
}

func printBalance(cmd *cobra.Command, b *domain.CreditBalance) {
	fmt.Fprintf(cmd.OutOrStdout(), "user %d: %d credits (purchased %d, used %d)\n",
		b.UserID, b.CurrentBalance, b.TotalPurchased, b.TotalUsed)
}
