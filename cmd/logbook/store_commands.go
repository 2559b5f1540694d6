package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"logbook/internal/config"
	"logbook/internal/logstore"
)

func newSessionsCommand(configFlag *string) *cobra.Command {
	var dbFlag string

	cmd := &cobra.Command{
		Use:   "sessions",
		Short: "List logging sessions in the record store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(*configFlag, dbFlag)
			if err != nil {
				return err
			}
			defer store.Close()

			sessions, err := store.Sessions(cmd.Context())
			if err != nil {
				return err
			}
			if len(sessions) == 0 {
				cmd.Println("no sessions")
				return nil
			}
			rows := make([][]string, 0, len(sessions))
			for _, session := range sessions {
				rows = append(rows, []string{
					session.ID,
					strconv.Itoa(session.Records),
					session.First,
					session.Last,
				})
			}
			cmd.Println(renderTable([]string{"SESSION", "RECORDS", "FIRST", "LAST"}, rows, 1))
			return nil
		},
	}

	cmd.Flags().StringVar(&dbFlag, "db", "", "Record store path (defaults to the configured store_path)")
	return cmd
}

func newRecordsCommand(configFlag *string) *cobra.Command {
	var dbFlag string
	var limit int

	cmd := &cobra.Command{
		Use:   "records <session>",
		Short: "Show stored records for one session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(*configFlag, dbFlag)
			if err != nil {
				return err
			}
			defer store.Close()

			records, err := store.Records(cmd.Context(), args[0], limit)
			if err != nil {
				return err
			}
			if len(records) == 0 {
				cmd.Println("no records")
				return nil
			}
			rows := make([][]string, 0, len(records))
			for _, record := range records {
				rows = append(rows, []string{
					strconv.FormatInt(record.ID, 10),
					record.CreatedAt,
					record.Message,
				})
			}
			cmd.Println(renderTable([]string{"ID", "STORED", "RECORD"}, rows, 0))
			return nil
		},
	}

	cmd.Flags().StringVar(&dbFlag, "db", "", "Record store path (defaults to the configured store_path)")
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum records to show (0 = all)")
	return cmd
}

func openStore(configPath, dbPath string) (*logstore.Store, error) {
	if dbPath == "" {
		cfg, _, _, err := config.Load(configPath)
		if err != nil {
			return nil, err
		}
		dbPath = cfg.Logging.StorePath
	}
	if dbPath == "" {
		return nil, fmt.Errorf("no record store path configured; pass --db or set logging.store_path")
	}
	return logstore.Open(dbPath)
}
