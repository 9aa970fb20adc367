package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/ngaut/log"
	"github.com/spf13/cobra"

	"github.com/coredb/tinytxn/config"
	"github.com/coredb/tinytxn/internal/adminserver"
	"github.com/coredb/tinytxn/txn"
)

var configPath string

func main() {
	rootCmd := &cobra.Command{
		Use:   "txnsim",
		Short: "Drive the tinytxn transaction-context kernel through scripted scenarios",
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file path")

	rootCmd.AddCommand(newDemoCommand(), newServeCommand())

	cobra.EnablePrefixMatching = true
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(rootCmd.UsageString())
		os.Exit(1)
	}
}

func loadConfig() *config.Config {
	conf, err := config.Load(configPath)
	if err != nil {
		log.Fatal(err)
	}
	if err := conf.Validate(); err != nil {
		log.Fatal(err)
	}
	return conf
}

func newDemoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the end-to-end scenarios a toy executor would drive the kernel through",
		Run: func(cmd *cobra.Command, args []string) {
			conf := loadConfig()
			log.SetLevelByString(conf.LogLevel)
			runDemo(conf)
		},
	}
}

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the read-only admin HTTP server over an in-memory transaction registry",
		Run: func(cmd *cobra.Command, args []string) {
			conf := loadConfig()
			log.SetLevelByString(conf.LogLevel)
			serve(conf)
		},
	}
}

func runDemo(conf *config.Config) {
	isolation, err := conf.DefaultIsolation.Level()
	if err != nil {
		log.Fatal(err)
	}

	reg := adminserver.NewRegistry()

	c := txn.New(1, isolation, 0x0000_00A5_0000_0001)
	reg.Put(c)

	a := txn.ItemPointer{BlockID: 1, Offset: 0}
	b := txn.ItemPointer{BlockID: 2, Offset: 0}

	c.RecordRead(a)
	c.RecordReadOwn(a)
	c.RecordUpdate(a)

	c.AddOnCommit(txn.Payload{Data: "reindex block 1", Hook: func(d interface{}) {
		log.Infof("firing trigger: %v", d)
	}})

	if reclaimNow := c.RecordDelete(a); reclaimNow {
		log.Infof("insert on %+v was fully elided, reclaiming immediately", a)
	}

	c.RecordInsert(b)
	c.GCSet().Add(7, a, txn.NeedsIndexPurge)

	c.SetCommitID(1000)
	c.FireOnCommit()
	c.SetResult(txn.ResultSuccess)

	log.Info(c.Describe())
}

func serve(conf *config.Config) {
	reg := adminserver.NewRegistry()
	handler := adminserver.NewHandler(reg)

	log.Infof("admin server listening on %s", conf.AdminAddr)
	if err := http.ListenAndServe(conf.AdminAddr, handler); err != nil {
		log.Fatal(err)
	}
}
