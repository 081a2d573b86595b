// Command backup_inspect dumps the snapshot artifact as tables, for
// checking what would be restored after a restart.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"

	"pugchamp/repositories"
)

func main() {
	dbPath := flag.String("db", "./badger", "Path to the badger DB")
	flag.Parse()

	db, err := badger.Open(badger.DefaultOptions(*dbPath).
		WithReadOnly(true).
		WithLoggingLevel(badger.ERROR))
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	var sessions []repositories.SessionRecord
	var zones []repositories.ZoneRecord
	err = db.View(func(txn *badger.Txn) error {
		if err := readKey(txn, "snapshot:pugs", &sessions); err != nil {
			return err
		}
		return readKey(txn, "snapshot:zones", &zones)
	})
	if err != nil {
		log.Fatal("Error while reading snapshot: ", err)
	}

	color.New(color.BgBlack, color.FgGreen).Println("Sessions")
	table := newTable([]string{"Name", "Scheduled", "Moderator", "Players", "Watchers", "Guild", "Channel"})
	for _, s := range sessions {
		table.Append([]string{
			s.Name,
			time.Unix(s.At, 0).UTC().Format(time.RFC822) + " (" + s.ZoneAbbr + ")",
			s.ModeratorID,
			strings.Join(s.PlayerIDs, ", "),
			strings.Join(s.WatcherIDs, ", "),
			s.GuildID,
			s.ChannelID,
		})
	}
	table.Render()

	fmt.Println()
	color.New(color.BgBlack, color.FgGreen).Println("Time zones")
	table = newTable([]string{"User", "Zone"})
	for _, z := range zones {
		table.Append([]string{z.UserID, z.Abbr})
	}
	table.Render()
}

func newTable(header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	return table
}

func readKey(txn *badger.Txn, key string, out any) error {
	item, err := txn.Get([]byte(key))
	if err == badger.ErrKeyNotFound {
		return nil
	}
	if err != nil {
		return err
	}
	return item.Value(func(val []byte) error {
		return json.Unmarshal(val, out)
	})
}
