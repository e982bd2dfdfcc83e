package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kitaptakip/bot-telegram/api/http/status"
	apiTelegram "github.com/kitaptakip/bot-telegram/api/telegram"
	"github.com/kitaptakip/bot-telegram/config"
	"github.com/kitaptakip/bot-telegram/service/auth"
	"github.com/kitaptakip/bot-telegram/service/fetch"
	"github.com/kitaptakip/bot-telegram/service/notify"
	"github.com/kitaptakip/bot-telegram/service/poll"
	"github.com/kitaptakip/bot-telegram/service/watch"
	"github.com/kitaptakip/bot-telegram/storage"
	"github.com/microcosm-cc/bluemonday"
	"gopkg.in/telebot.v3"
)

func main() {

	// init config and logger
	slog.Info("starting...")
	cfg, err := config.NewConfigFromEnv()
	if err != nil {
		slog.Error("failed to load the config", "err", err)
		panic(err)
	}
	opts := slog.HandlerOptions{
		Level: slog.Level(cfg.Log.Level),
	}
	log := slog.New(slog.NewTextHandler(os.Stdout, &opts))

	// init the durable collections
	storUsers, err := storage.NewUsers(filepath.Join(cfg.Db.Dir, "users.json"))
	if err != nil {
		panic(err)
	}
	storAdmins, err := storage.NewAdmins(filepath.Join(cfg.Db.Dir, "admins.json"), cfg.Admin.SuperId)
	if err != nil {
		panic(err)
	}

	// init the services
	svcWatch := watch.NewService(storUsers)
	svcWatch = watch.NewLogging(svcWatch, log)
	svcAuth := auth.NewService(storAdmins, storUsers, cfg.Admin.SuperId)
	svcAuth = auth.NewLogging(svcAuth, log)
	clientHttp := &http.Client{}
	svcFetch := fetch.NewService(clientHttp, cfg.Catalog.FetchTimeout)
	svcFetch = fetch.NewLogging(svcFetch, log)
	fmtMsg := notify.Format{
		HtmlPolicy: bluemonday.StrictPolicy(),
	}

	// init Telegram bot
	s := telebot.Settings{
		Poller: &telebot.LongPoller{
			Timeout: 10 * time.Second,
		},
		Token: cfg.Api.Telegram.Token,
	}
	var b *telebot.Bot
	b, err = telebot.NewBot(s)
	if err != nil {
		panic(err)
	}
	err = b.SetCommands([]telebot.Command{
		{
			Text:        "start",
			Description: "Botu başlatır",
		},
		{
			Text:        "ekle",
			Description: "Yeni kitap ekler",
		},
		{
			Text:        "liste",
			Description: "Takip listesini gösterir",
		},
		{
			Text:        "sil",
			Description: "Kitabı takipten çıkarır",
		},
		{
			Text:        "istatistik",
			Description: "Takip istatistiklerini gösterir",
		},
	})
	if err != nil {
		panic(err)
	}

	svcNotify := notify.NewTelegram(b, log)
	svcPoll := poll.NewService(storUsers, svcFetch, svcWatch, svcNotify, fmtMsg, int(cfg.Check.Concurrency), log)

	// assign handlers
	b.Handle(apiTelegram.CmdStart, apiTelegram.ErrorHandlerFunc(apiTelegram.StartHandlerFunc(svcWatch)))
	b.Handle(apiTelegram.CmdAdd, apiTelegram.ErrorHandlerFunc(apiTelegram.AddHandlerFunc(svcWatch, svcFetch, cfg.Catalog.Host)))
	b.Handle(apiTelegram.CmdList, apiTelegram.ErrorHandlerFunc(apiTelegram.ListHandlerFunc(svcWatch)))
	b.Handle(apiTelegram.CmdRemove, apiTelegram.ErrorHandlerFunc(apiTelegram.RemoveHandlerFunc(svcWatch)))
	b.Handle(apiTelegram.CmdStats, apiTelegram.ErrorHandlerFunc(apiTelegram.StatsHandlerFunc(svcWatch)))
	//
	b.Handle(apiTelegram.CmdAdmin, apiTelegram.ErrorHandlerFunc(apiTelegram.AdminStatsHandlerFunc(svcAuth, svcWatch)))
	b.Handle(apiTelegram.CmdBroadcast, apiTelegram.ErrorHandlerFunc(apiTelegram.BroadcastHandlerFunc(svcAuth, svcNotify, fmtMsg, storUsers)))
	b.Handle(apiTelegram.CmdBlock, apiTelegram.ErrorHandlerFunc(apiTelegram.BlockHandlerFunc(svcAuth)))
	b.Handle(apiTelegram.CmdUnblock, apiTelegram.ErrorHandlerFunc(apiTelegram.UnblockHandlerFunc(svcAuth)))
	b.Handle(apiTelegram.CmdAdmins, apiTelegram.ErrorHandlerFunc(apiTelegram.AdminsHandlerFunc(svcAuth, storUsers, cfg.Admin.SuperId)))
	b.Handle(apiTelegram.CmdPromote, apiTelegram.ErrorHandlerFunc(apiTelegram.PromoteHandlerFunc(svcAuth)))
	b.Handle(apiTelegram.CmdDemote, apiTelegram.ErrorHandlerFunc(apiTelegram.DemoteHandlerFunc(svcAuth)))
	b.Handle(apiTelegram.CmdAdminHelp, apiTelegram.ErrorHandlerFunc(apiTelegram.AdminHelpHandlerFunc(svcAuth)))
	//
	go b.Start()

	// start the periodic checks
	go func() {
		time.Sleep(cfg.Check.Delay)
		svcPoll.CheckAll(context.Background())
		t := time.NewTicker(cfg.Check.Interval)
		for range t.C {
			svcPoll.CheckAll(context.Background())
		}
	}()

	// status endpoint
	h := status.Handler{
		SvcWatch:   svcWatch,
		StorAdmins: storAdmins,
		LastTick:   svcPoll.LastTick,
	}
	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()
	r.GET("/healthz", h.Healthz)
	r.GET("/v1/status", h.Status)
	err = r.Run(fmt.Sprintf(":%d", cfg.Api.Status.Port))
	if err != nil {
		panic(err)
	}
}
