package bot

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"
	"github.com/charmbracelet/log"

	"github.com/flatywop/predlojkabot/command"
	"github.com/flatywop/predlojkabot/config"
	"github.com/flatywop/predlojkabot/db"
	"github.com/flatywop/predlojkabot/handler/suggest"
	"github.com/flatywop/predlojkabot/storage"
	"github.com/flatywop/predlojkabot/transport"
)

var dg *discordgo.Session

// Start runs the bot until an interrupt arrives.
func Start() {
	err := config.LoadConfig()
	if err != nil {
		log.Fatal("error loading config", "error", err)
	}

	if err := db.InitDB(config.Cfg.Database.Path); err != nil {
		log.Fatal("failed to initialize database", "error", err)
	}
	if err := db.EnsureSettings(); err != nil {
		log.Fatal("failed to create settings row", "error", err)
	}
	if err := storage.Init(config.Cfg.Storage.TempDir); err != nil {
		log.Fatal("failed to create temp directory", "error", err)
	}

	suggest.RegisterHandlers()

	dg, err = discordgo.New("Bot " + config.Cfg.Token)
	if err != nil {
		log.Fatal("error creating Discord session", "error", err)
	}

	registerEventHandlers(dg)

	if err = dg.Open(); err != nil {
		log.Fatal("error opening connection", "error", err)
	}

	for _, cmd := range command.AllCommands {
		if _, err := dg.ApplicationCommandCreate(dg.State.User.ID, "", cmd); err != nil {
			log.Fatal("cannot create command", "command", cmd.Name, "error", err)
		}
	}

	checkSettings(dg)

	log.Info("bot is now running, press CTRL-C to exit")
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	dg.Close()
}

// checkSettings reports the bootstrap state at startup. An initialized bot
// without a target channel is a configuration problem the initializer can
// repair, so they get a warning DM; an uninitialized bot just waits for
// /init and keeps accepting submissions.
func checkSettings(s *discordgo.Session) {
	settings, err := db.GetSettings()
	if err != nil {
		log.Fatal("failed to read settings", "error", err)
	}

	switch {
	case !settings.Initialized:
		log.Warn("bot is not initialized, waiting for /init")
	case settings.TargetChannel == "":
		log.Warn("bot is initialized but no target channel is set")
		if settings.InitializerID != "" {
			if err := transport.DirectMessage(transport.NewDiscord(s), settings.InitializerID, "Warning! No target channel specified."); err != nil {
				log.Warn("failed to warn initializer", "error", err)
			}
		}
	default:
		log.Info("settings ok", "target_channel", settings.TargetChannel)
	}
}

// GetSession returns the current Discord session.
func GetSession() *discordgo.Session {
	return dg
}
