/*
 *  DocuVault holds the logic for decentralized document custody
 *  Copyright (C) 2020 DocuVault contributors
 *
 *  This program is free software: you can redistribute it and/or modify
 *  it under the terms of the GNU General Public License as published by
 *  the Free Software Foundation, either version 3 of the License, or
 *  (at your option) any later version.
 *
 *  This program is distributed in the hope that it will be useful,
 *  but WITHOUT ANY WARRANTY; without even the implied warranty of
 *  MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 *  GNU General Public License for more details.
 *
 *  You should have received a copy of the GNU General Public License
 *  along with this program.  If not, see <https://www.gnu.org/licenses/>.
 */

package cmd

import (
	"fmt"
	"os"

	"github.com/Modern-Miracle/NGDocuVault-sub001/api"
	engine2 "github.com/Modern-Miracle/NGDocuVault-sub001/engine"
	pkg2 "github.com/Modern-Miracle/NGDocuVault-sub001/pkg"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	engine4 "github.com/nuts-foundation/nuts-event-octopus/engine"
	core "github.com/nuts-foundation/nuts-go-core"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const confPort = "port"
const confInterface = "interface"

var serveCommand = &cobra.Command{
	Use:   "serve",
	Short: "Start docuvault as a standalone api server",
	Run: func(cmd *cobra.Command, args []string) {
		server := echo.New()
		server.HideBanner = true
		server.Use(middleware.Logger())
		instance := pkg2.DocuVaultServiceInstance()
		if !instance.Started() {
			logrus.Fatalf("docuvault.%s must be configured to serve", pkg2.ConfigOwner)
		}
		api.RegisterHandlers(server, api.Wrapper{Cl: instance})
		addr := fmt.Sprintf("%s:%d", serverInterface, serverPort)
		server.Logger.Fatal(server.Start(addr))
	},
}
var (
	serverInterface string
	serverPort      int
)

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	nutsConfig := core.NutsConfig()

	var docuVaultEngine = engine2.NewDocuVaultEngine()

	var rootCommand = docuVaultEngine.Cmd
	serveCommand.Flags().StringVar(&serverInterface, confInterface, "localhost", "Server interface binding")
	serveCommand.Flags().IntVarP(&serverPort, confPort, "p", 1324, "Server listen port")
	rootCommand.AddCommand(serveCommand)

	nutsConfig.IgnoredPrefixes = append(nutsConfig.IgnoredPrefixes, docuVaultEngine.ConfigKey)
	nutsConfig.RegisterFlags(rootCommand, docuVaultEngine)

	eventOctopusEngine := engine4.NewEventOctopusEngine()
	nutsConfig.RegisterFlags(rootCommand, eventOctopusEngine)

	if err := nutsConfig.Load(rootCommand); err != nil {
		panic(err)
	}

	nutsConfig.PrintConfig(logrus.StandardLogger())

	if err := nutsConfig.InjectIntoEngine(docuVaultEngine); err != nil {
		panic(err)
	}

	if err := nutsConfig.InjectIntoEngine(eventOctopusEngine); err != nil {
		panic(err)
	}

	if err := eventOctopusEngine.Configure(); err != nil {
		panic(err)
	}

	if err := docuVaultEngine.Configure(); err != nil {
		panic(err)
	}

	if err := eventOctopusEngine.Start(); err != nil {
		panic(err)
	}

	if err := docuVaultEngine.Start(); err != nil {
		panic(err)
	}
	defer docuVaultEngine.Shutdown()

	if err := rootCommand.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
