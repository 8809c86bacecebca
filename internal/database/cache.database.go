package database

import (
	"context"
	"fmt"
	"time"

	"leasehold/config"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/valkey-io/valkey-go"
)

// Valkey database indexes, one per cache category.
const (
	// GENERAL_CACHE_INDEX (DB 0) - health checks and miscellaneous keys
	GENERAL_CACHE_INDEX = iota

	// SESSION_CACHE_INDEX (DB 1) - admin session ids, expiring with the token
	SESSION_CACHE_INDEX

	// DRAFT_CACHE_INDEX (DB 2) - in-progress application drafts
	DRAFT_CACHE_INDEX
)

func (s *DB) initializeCacheDB(config config.Config) error {
	log := s.log.Function("initializeCacheDB")
	log.Info("initializing cache database")

	address := config.DatabaseCacheAddress
	port := config.DatabaseCachePort
	if address == "" || port == 0 {
		return log.ErrMsg("failed to initialize cache database: address or port is empty")
	}

	initAddress := []string{fmt.Sprintf("%s:%d", address, port)}

	var cacheDB Cache
	clients := []struct {
		target *CacheClient
		index  int
		name   string
	}{
		{&cacheDB.General, GENERAL_CACHE_INDEX, "general"},
		{&cacheDB.Session, SESSION_CACHE_INDEX, "session"},
		{&cacheDB.Draft, DRAFT_CACHE_INDEX, "draft"},
	}

	for _, c := range clients {
		client, err := valkey.NewClient(valkey.ClientOption{
			InitAddress: initAddress,
			SelectDB:    c.index,
		})
		if err != nil {
			return log.Err("failed to create valkey client", err, "cache", c.name)
		}
		*c.target = client
	}

	s.Cache = cacheDB

	if config.DatabaseCacheReset != -1 {
		go clearCacheDB(config.DatabaseCacheReset, cacheDB)
	}

	return nil
}

func cacheByIndex(index int, cacheDB Cache) (CacheClient, string, bool) {
	switch index {
	case GENERAL_CACHE_INDEX:
		return cacheDB.General, "General", true
	case SESSION_CACHE_INDEX:
		return cacheDB.Session, "Session", true
	case DRAFT_CACHE_INDEX:
		return cacheDB.Draft, "Draft", true
	}
	return nil, "", false
}

func clearCacheDB(index int, cacheDB Cache) {
	log := logger.New("database").File("cache.database").Function("clearCacheDB")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client, dbName, ok := cacheByIndex(index, cacheDB)
	if !ok || client == nil {
		log.Warn("Invalid cache database index", "index", index)
		return
	}

	if err := client.Do(ctx, client.B().Flushdb().Build()).Error(); err != nil {
		log.Er("Failed to clear cache database", err, "index", index, "dbName", dbName)
		return
	}

	log.Info("Successfully cleared cache database", "index", index, "dbName", dbName)
}

// FlushAllCaches empties every cache database. Used by the seed command.
func (s *DB) FlushAllCaches() error {
	log := s.log.Function("FlushAllCaches")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	for index := GENERAL_CACHE_INDEX; index <= DRAFT_CACHE_INDEX; index++ {
		client, dbName, ok := cacheByIndex(index, s.Cache)
		if !ok || client == nil {
			continue
		}

		if err := client.Do(ctx, client.B().Flushdb().Build()).Error(); err != nil {
			return log.Err("failed to flush cache database", err, "dbName", dbName)
		}
	}

	return nil
}
