package main

import (
	"context"
	"database/sql"
	"fmt"
	_ "github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	ExchangeClient "gitlab.com/open-soft/go-trading-webhook/src/client"
	"gitlab.com/open-soft/go-trading-webhook/src/controller"
	ExchangeModel "gitlab.com/open-soft/go-trading-webhook/src/model"
	ExchangeRepository "gitlab.com/open-soft/go-trading-webhook/src/repository"
	"gitlab.com/open-soft/go-trading-webhook/src/service"
	ExchangeService "gitlab.com/open-soft/go-trading-webhook/src/service/exchange"
	"gitlab.com/open-soft/go-trading-webhook/src/utils"
	"log"
	"net/http"
	"os"
	"sync"
	"time"
)

func main() {
	pwd, _ := os.Getwd()
	if _, err := os.Stat(fmt.Sprintf("%s/.env", pwd)); err == nil {
		log.Println(".env is found, loading variables...")
		err = godotenv.Load()
		if err != nil {
			log.Println(err)
		}
	}

	db, err := sql.Open("mysql", os.Getenv("DATABASE_DSN")) // root:go_trading_webhook@tcp(mysql:3306)/go_trading_webhook
	defer db.Close()

	db.SetMaxIdleConns(64)
	db.SetMaxOpenConns(64)
	db.SetConnMaxLifetime(time.Minute)

	if err != nil {
		log.Fatal(fmt.Sprintf("MySQL can't connect: %s", err.Error()))
	}

	var ctx = context.Background()
	rdb := redis.NewClient(&redis.Options{
		Addr:     os.Getenv("REDIS_DSN"), //"redis:6379",
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	binance := ExchangeClient.Binance{
		ApiKey:       os.Getenv("BINANCE_API_KEY"),
		ApiSecret:    os.Getenv("BINANCE_API_SECRET"),
		Channel:      make(chan []byte),
		SocketWriter: make(chan []byte),
		Lock:         &sync.Mutex{},
	}
	binance.Connect(os.Getenv("BINANCE_WS_DSN")) // "wss://testnet.binance.vision/ws-api/v3"

	botRepository := ExchangeRepository.BotRepository{
		DB:  db,
		RDB: rdb,
		Ctx: &ctx,
	}

	currentBot := botRepository.GetCurrentBot()
	if currentBot == nil {
		botUuid := os.Getenv("BOT_UUID")
		err := botRepository.Create(ExchangeModel.Bot{
			BotUuid: botUuid,
		})
		if err != nil {
			panic(err)
		}

		currentBot = botRepository.GetCurrentBot()
		if currentBot == nil {
			panic(fmt.Sprintf("Can't initialize bot: %s", botUuid))
		}
	}

	log.Printf("Bot [%s] is initialized successfully", currentBot.BotUuid)

	balanceService := ExchangeService.BalanceService{
		Binance:    &binance,
		RDB:        rdb,
		Ctx:        &ctx,
		CurrentBot: currentBot,
	}

	formatter := utils.Formatter{}

	httpClient := ExchangeClient.HttpClient{}
	lineNotificator := service.LineNotificator{
		HttpClient: &httpClient,
		NotifyUrl:  os.Getenv("LINE_NOTIFY_URL"),
		Token:      os.Getenv("LINE_NOTIFY_TOKEN"),
	}

	orderExecutor := ExchangeService.OrderExecutor{
		CurrentBot:      currentBot,
		BalanceService:  &balanceService,
		Binance:         &binance,
		Formatter:       &formatter,
		CallbackManager: &lineNotificator,
		MinQuoteBalance: 10.00,
		BalanceBuffer:   1.00,
	}

	commandParser := service.CommandParser{}
	webhookController := controller.WebhookController{
		CommandParser: &commandParser,
		OrderExecutor: &orderExecutor,
	}

	botController := controller.BotController{
		CurrentBot:     currentBot,
		BotRepository:  &botRepository,
		BalanceService: &balanceService,
	}

	http.HandleFunc("/", webhookController.PostWebhookAction)
	http.HandleFunc("/status", botController.GetStatusAction)

	port := os.Getenv("LISTEN_PORT")
	if len(port) == 0 {
		port = "8080"
	}

	address := fmt.Sprintf("127.0.0.1:%s", port)
	log.Printf("Server running at http://%s/", address)
	log.Println(http.ListenAndServe(address, nil))
}
