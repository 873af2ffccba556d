// SPDX-License-Identifier: Apache-2.0
// Use of this source code is governed by an Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/robinrowe/iroha/configuration"
	"github.com/robinrowe/iroha/fault"
	"github.com/robinrowe/iroha/genesis"
	"github.com/robinrowe/iroha/mode"
	"github.com/robinrowe/iroha/storage"
	"github.com/robinrowe/iroha/validation"
	"github.com/robinrowe/iroha/wsv"
)

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, _, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--quiet] --config-file=FILE [--version]", program)
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	theConfiguration, err := configuration.GetConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)

	// set up the fault panic log
	if err := fault.Initialise(); nil != err {
		log.Criticalf("fault initialise error: %s", err)
		exitwithstatus.Message("fault initialise error: %s", err)
	}
	defer fault.Finalise()

	// ------------------
	// start of real main
	// ------------------

	// optional PID file
	// use if not running under a supervisor program like daemon(8)
	if "" != theConfiguration.PidFile {
		lockFile, err := os.OpenFile(theConfiguration.PidFile, os.O_WRONLY|os.O_EXCL|os.O_CREATE, os.ModeExclusive|0600)
		if err != nil {
			if os.IsExist(err) {
				exitwithstatus.Message("%s: another instance is already running", program)
			}
			exitwithstatus.Message("%s: PID file: %q creation failed, error: %s", program, theConfiguration.PidFile, err)
		}
		fmt.Fprintf(lockFile, "%d\n", os.Getpid())
		lockFile.Close()
		defer os.Remove(theConfiguration.PidFile)
	}

	// set the initial system mode - before any background tasks are started
	err = mode.Initialise(theConfiguration.Chain)
	if nil != err {
		log.Criticalf("mode initialise error: %s", err)
		exitwithstatus.Message("mode initialise error: %s", err)
	}
	defer mode.Finalise()

	// general info
	log.Infof("test mode: %v", mode.IsTesting())
	log.Infof("database: %q", theConfiguration.DatabasePath())

	// start the data storage
	log.Info("initialise storage")
	if err := os.MkdirAll(theConfiguration.Database.Directory, 0700); nil != err {
		log.Criticalf("database directory error: %s", err)
		exitwithstatus.Message("database directory error: %s", err)
	}
	err = storage.Initialise(theConfiguration.DatabasePath(), storage.ReadWrite)
	if nil != err {
		log.Criticalf("storage initialise error: %s", err)
		exitwithstatus.Message("storage initialise error: %s", err)
	}
	defer storage.Finalise()

	// an empty world state must be seeded from the genesis block
	state := wsv.New(wsv.NewPersistentStore())
	if 0 == len(state.GetRoles()) {
		log.Info("empty world state: bootstrapping from genesis block")
		if err := bootstrap(log, theConfiguration); nil != err {
			log.Criticalf("bootstrap error: %s", err)
			exitwithstatus.Message("bootstrap error: %s", err)
		}
	}

	mode.Set(mode.Normal)

	// wait for CTRL-C before shutting down to allow manual testing
	if 0 == len(options["quiet"]) {
		fmt.Printf("\n\nWaiting for CTRL-C (SIGINT) or 'kill <pid>' (SIGTERM)…")
	}

	// turn Signals into channel messages
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	sig := <-ch
	log.Infof("received signal: %v", sig)
	if 0 == len(options["quiet"]) {
		fmt.Printf("\nreceived signal: %v\n", sig)
		fmt.Printf("\nshutting down…\n")
	}

	log.Info("shutting down…")
	mode.Set(mode.Stopped)
}

// seed the world state from the genesis block
//
// the block is first trial-applied to a temporary world state; every
// genesis transaction must pass, a partially valid genesis block is
// rejected outright; only then is the block replayed into a storage
// transaction and committed
func bootstrap(log *logger.L, theConfiguration *configuration.Configuration) error {

	trustedPeers, err := genesis.ParseTrustedPeers(theConfiguration.TrustedPeersFile)
	if nil != err {
		return err
	}
	log.Infof("trusted peers: %d", len(trustedPeers))

	proposal, err := genesis.LoadBlock(theConfiguration.GenesisBlockFile)
	if nil != err {
		return err
	}

	temp := wsv.NewTemporary(wsv.NewPersistentStore())
	defer temp.Discard()

	accepted, err := validation.NewValidator().Validate(proposal, temp)
	if nil != err {
		return err
	}
	if len(accepted.Transactions) != len(proposal.Transactions) {
		return fault.ErrGenesisBlockRejected
	}

	// replay into the persistent state
	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}

	state := wsv.New(wsv.NewPersistentTransactionStore(trx))
	for _, tx := range accepted.Transactions {
		for _, cmd := range tx.Commands {
			if err := state.Execute(cmd, tx.Creator); nil != err {
				trx.Abort()
				return err
			}
		}
	}
	for _, peer := range trustedPeers {
		p := peer
		if err := state.InsertPeer(&p); nil != err {
			trx.Abort()
			return err
		}
	}

	if err := trx.Commit(); nil != err {
		return err
	}
	log.Infof("genesis block applied: %d transactions", len(accepted.Transactions))
	return nil
}
