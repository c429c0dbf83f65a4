package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/scramble/internal/dict"
	"github.com/robalobadob/scramble/internal/httpserver"
	"github.com/robalobadob/scramble/internal/store"
	"github.com/robalobadob/scramble/internal/words"
)

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	// The root-word pool is mandatory; without it there is no game.
	if err := words.Init(); err != nil {
		log.Fatal().Err(err).Msg("failed to load root-word pool")
	}

	d, err := openDictionary()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load dictionary")
	}

	db, err := openDB(getEnv("DB_PATH", "./data/app.db"))
	if err != nil {
		log.Fatal().Err(err).Msg("open database")
	}
	if err := migrate(db); err != nil {
		log.Fatal().Err(err).Msg("migrate database")
	}

	mem := store.NewMemoryStore()
	srv := httpserver.New(mem, db, d)
	port := getEnv("PORT", "5175")
	log.Info().Str("port", port).Int("roots", words.Stats()).Msg("starting scramble server")
	if err := srv.Start(":" + port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

// openDictionary picks the word oracle backend:
//  1. DICT_DB set → SQLite dictionary database.
//  2. DICT_FILE set → word list file loaded into memory (DICT_LANG, default "en").
//  3. Otherwise → embedded english list.
func openDictionary() (dict.Dictionary, error) {
	if dsn := os.Getenv("DICT_DB"); dsn != "" {
		return dict.OpenSQLite(dsn)
	}
	if path := os.Getenv("DICT_FILE"); path != "" {
		m := dict.NewMemory()
		if err := m.LoadFile(getEnv("DICT_LANG", "en"), path); err != nil {
			return nil, err
		}
		return m, nil
	}
	return dict.Embedded()
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
