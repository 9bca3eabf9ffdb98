package main

import (
	"context"
	"flag"
	"net"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/sqlc-dev/pqtype"
	"golang.org/x/exp/rand"

	"github.com/saeidalz13/battleship-engine/db"
	"github.com/saeidalz13/battleship-engine/db/sqlc"
	mb "github.com/saeidalz13/battleship-engine/models/battleship"
	"github.com/saeidalz13/battleship-engine/models/match"
)

func main() {
	if os.Getenv("STAGE") != "prod" {
		if err := godotenv.Load(".env"); err != nil {
			log.Warn().Err(err).Msg("no .env file loaded")
		}
	}

	var (
		numMatches         = flag.Int("matches", 10, "number of matches to simulate")
		boardSize          = flag.Int("size", 10, "board size, 5 to 10")
		hostStrategy       = flag.String("host-strategy", "hunt-and-target", "host attack strategy")
		challengerStrategy = flag.String("challenger-strategy", "random", "challenger attack strategy")
		seed               = flag.Int64("seed", time.Now().UnixNano(), "seed for fleet placement")
		verbose            = flag.Bool("v", false, "log every turn")
	)
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	hs, err := mb.ParseStrategy(*hostStrategy)
	if err != nil {
		log.Fatal().Err(err).Send()
	}
	cs, err := mb.ParseStrategy(*challengerStrategy)
	if err != nil {
		log.Fatal().Err(err).Send()
	}

	// Analytics recording is optional; the simulation runs without a db.
	var dbManager *sqlc.DbManager
	if psqlUrl := os.Getenv("DATABASE_URL"); psqlUrl != "" {
		conn := db.MustConnectToDb(psqlUrl)
		defer conn.Close()
		dbm := sqlc.NewDbManager(sqlc.New(conn))
		dbManager = &dbm
	}

	planner := mb.NewPlanner(mb.WithRandSource(rand.NewSource(uint64(*seed))))
	manager := match.NewManager()

	wins := make(map[string]int, 2)
	totalTurns := 0
	totalShots := int64(0)

	for i := 0; i < *numMatches; i++ {
		m, err := manager.CreateMatch(match.Config{
			BoardSize:          *boardSize,
			HostName:           hs.String() + "-host",
			ChallengerName:     cs.String() + "-challenger",
			HostStrategy:       hs,
			ChallengerStrategy: cs,
			Planner:            planner,
			Logger:             &log.Logger,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to create match")
		}

		summary, err := m.Run()
		if err != nil {
			log.Fatal().Err(err).Msg("match aborted")
		}

		wins[summary.Winner]++
		totalTurns += summary.Turns
		for _, shots := range summary.Shots {
			totalShots += int64(shots)
		}
		manager.TerminateMatch(m.Uuid())
	}

	log.Info().
		Int("matches", *numMatches).
		Interface("wins", wins).
		Float64("avgTurns", float64(totalTurns)/float64(*numMatches)).
		Msg("simulation finished")

	if dbManager != nil {
		recordAnalytics(dbManager, *numMatches, totalShots)
	}
}

func recordAnalytics(dbManager *sqlc.DbManager, matches int, shots int64) {
	hostInet := pqtype.Inet{IPNet: mustGetHostIpNet(), Valid: true}

	ctx, cancel := context.WithTimeout(context.Background(), sqlc.QuerierCtxTimeout)
	defer cancel()

	for i := 0; i < matches; i++ {
		if err := dbManager.Analytics.IncrementMatchesSimulatedCount(ctx, hostInet); err != nil {
			log.Error().Err(err).Msg("failed to record simulated match")
			return
		}
	}
	if err := dbManager.Analytics.AddShotsFiredCount(ctx, hostInet, shots); err != nil {
		log.Error().Err(err).Msg("failed to record shots fired")
	}
}

func mustGetHostIpNet() net.IPNet {
	ifaces, err := net.Interfaces()
	if err != nil {
		panic(err)
	}

	for _, iface := range ifaces {
		if iface.Flags&net.FlagUp == 0 {
			continue
		}
		if iface.Flags&net.FlagLoopback != 0 {
			continue
		}

		addrs, err := iface.Addrs()
		if err != nil {
			panic(err)
		}

		for _, addr := range addrs {
			var ipnet *net.IPNet
			var ip net.IP

			switch v := addr.(type) {
			case *net.IPNet:
				ipnet = v
				ip = v.IP

			case *net.IPAddr:
				ip = v.IP
			}

			if ipnet != nil && ip != nil && ip.To4() != nil && !ip.IsLoopback() {
				return *ipnet
			}
		}
	}

	panic("ipnet could not be found!")
}
