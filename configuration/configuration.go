// SPDX-License-Identifier: Apache-2.0
// Use of this source code is governed by an Apache-2.0
// license that can be found in the LICENSE file.

package configuration

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/logger"
)

// chain selects an independent ledger instance and names its database
const (
	MainChain  = "main"
	TestChain  = "test"
	LocalChain = "local"
)

// basic defaults (directories and files are relative to the
// "data_directory" from the configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultLevelDBDirectory = "data"

	defaultGenesisBlockFile = "genesis.json"
	defaultTrustedPeersFile = "peers.json"

	defaultLogDirectory = "log"
	defaultLogFile      = "irohad.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// path expanded or calculated defaults
var (
	defaultLogLevels = map[string]string{
		logger.DefaultTag: "critical",
	}
)

// DatabaseType - where the world state database lives
type DatabaseType struct {
	Directory string `gluamapper:"directory" json:"directory"`
	Name      string `gluamapper:"name" json:"name"`
}

// Configuration - the daemon settings
type Configuration struct {
	DataDirectory string       `gluamapper:"data_directory" json:"data_directory"`
	PidFile       string       `gluamapper:"pidfile" json:"pidfile"`
	Chain         string       `gluamapper:"chain" json:"chain"`
	Database      DatabaseType `gluamapper:"database" json:"database"`

	GenesisBlockFile string `gluamapper:"genesis_block_file" json:"genesis_block_file"`
	TrustedPeersFile string `gluamapper:"trusted_peers_file" json:"trusted_peers_file"`

	Logging logger.Configuration `gluamapper:"logging" json:"logging"`
}

// ValidChain - restrict chain names to the supported set
func ValidChain(chain string) bool {
	switch chain {
	case MainChain, TestChain, LocalChain:
		return true
	default:
		return false
	}
}

// DatabasePath - the resolved location of the world state database
func (c *Configuration) DatabasePath() string {
	return filepath.Join(c.Database.Directory, c.Database.Name)
}

// GetConfiguration - read, decode and verify the configuration
func GetConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{

		DataDirectory: defaultDataDirectory,
		PidFile:       "", // no PidFile by default
		Chain:         MainChain,

		GenesisBlockFile: defaultGenesisBlockFile,
		TrustedPeersFile: defaultTrustedPeersFile,

		Database: DatabaseType{
			Directory: defaultLevelDBDirectory,
			Name:      "", // computed from the chain below
		},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}

	if err := ParseConfigurationFile(configurationFileName, options); nil != err {
		return nil, err
	}

	options.Chain = strings.ToLower(options.Chain)
	if !ValidChain(options.Chain) {
		return nil, fmt.Errorf("chain: %q is not supported", options.Chain)
	}

	// each chain keeps its own database
	if "" == options.Database.Name {
		options.Database.Name = options.Chain + "-wsv.leveldb"
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	} else {
		options.DataDirectory = filepath.Clean(options.DataDirectory)
	}

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("path: %q is not a directory", options.DataDirectory)
	}

	// force all relevant items to be absolute paths
	// if not, assign them to the data directory
	mustBeAbsolute := []*string{
		&options.Database.Directory,
		&options.GenesisBlockFile,
		&options.TrustedPeersFile,
		&options.Logging.Directory,
	}
	for _, f := range mustBeAbsolute {
		*f = ensureAbsolute(options.DataDirectory, *f)
	}

	// optional absolute paths cannot be blank
	mustNotBeBlank := []*string{
		&options.Database.Name,
		&options.Logging.File,
	}
	for _, f := range mustNotBeBlank {
		if "" == *f {
			return nil, fmt.Errorf("field: %q cannot be blank", *f)
		}
	}

	return options, nil
}

// ensure the path is absolute, relative paths hang off the directory
func ensureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}
