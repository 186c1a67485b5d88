package app

import (
	"context"
	"log"
	"log/slog"

	"github.com/cinemood/core/internal/config"
	http_init "github.com/cinemood/core/internal/delivery/http/init"
	http_requestid_middleware "github.com/cinemood/core/internal/delivery/http/middleware/requestid"
	http_movie "github.com/cinemood/core/internal/delivery/http/movie"
	http_recommend "github.com/cinemood/core/internal/delivery/http/recommend"
	"github.com/cinemood/core/internal/infra/llm"
	infra_postgres_corpus "github.com/cinemood/core/internal/infra/postgres/corpus"
	infra_pg_init "github.com/cinemood/core/internal/infra/postgres/init"
	infra_redis_init "github.com/cinemood/core/internal/infra/redis/init"
	infra_movie_cache "github.com/cinemood/core/internal/infra/redis/moviecache"
	"github.com/cinemood/core/internal/infra/tmdb"
	"github.com/cinemood/core/internal/service/contentindex"
	"github.com/cinemood/core/internal/service/corpus"
	"github.com/cinemood/core/internal/service/intent"
	"github.com/cinemood/core/internal/service/taxonomy"
	usecase_recommend "github.com/cinemood/core/internal/usecase/recommend"
)

func Go(cfg *config.Config) {
	tmdbOpts := []tmdb.ClientOption{}
	if cfg.TMDB.BaseURL != "" {
		tmdbOpts = append(tmdbOpts, tmdb.WithBaseURL(cfg.TMDB.BaseURL))
	}
	if cfg.Redis.Enabled {
		redisConn := infra_redis_init.MustEstablishConn(cfg.Redis)
		cache := infra_movie_cache.New(redisConn, "tmdb_cache")
		tmdbOpts = append(tmdbOpts, tmdb.WithCache(cache, cfg.Redis.TTL))
	}

	catalog, err := tmdb.New(cfg.TMDB.APIKey, tmdbOpts...)
	if err != nil {
		log.Fatalf("failed to init catalog gateway: %v", err)
	}

	// A missing LLM endpoint disables intent extraction for the process;
	// chat requests then resolve through the popularity fallback.
	var parser *intent.Parser
	if generator, err := llm.New(cfg.LLM.Endpoint, cfg.LLM.APIKey, cfg.LLM.Model); err != nil {
		slog.Warn("llm is not configured, chat intent extraction disabled")
		parser = intent.New(nil)
	} else {
		parser = intent.New(generator)
	}

	tax := taxonomy.New()

	engineOpts := []usecase_recommend.Option{}
	if cfg.Recommender.Strategy == "content" {
		index := contentindex.New()

		loaderOpts := []corpus.Option{}
		if cfg.Postgres.Enabled {
			pgConn := infra_pg_init.MustEstablishConn(cfg.Postgres)
			snapshots := infra_postgres_corpus.New(pgConn)
			loaderOpts = append(loaderOpts, corpus.WithSnapshots(snapshots, cfg.Recommender.SnapshotAge))
		}
		loader := corpus.New(catalog, loaderOpts...)

		// The corpus fetch can take a while; requests served before the
		// build finishes fall through to the catalog strategy.
		go func() {
			movies, err := loader.Load(context.Background(), cfg.Recommender.CorpusLimit)
			if err != nil {
				slog.Warn("content index corpus unavailable", slog.String("error", err.Error()))
				return
			}
			index.Build(movies)
			slog.Info("content index ready", slog.Int("movies", index.Size()))
		}()

		engineOpts = append(engineOpts, usecase_recommend.WithContentIndex(index))
	}

	recommendUC := usecase_recommend.New(catalog, tax, parser, engineOpts...)

	controllerPool := http_init.NewControllerPool(http_requestid_middleware.New())
	controllerPool.Add(http_recommend.New(recommendUC))
	controllerPool.Add(http_movie.New(catalog))

	controllerPool.Register()
	controllerPool.RunAll(cfg.HTTP.Port)
}
