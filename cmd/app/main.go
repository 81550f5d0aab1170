package main

import (
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/chris/campaign-ledger/pkg/campaigns"
	"github.com/chris/campaign-ledger/pkg/config"
	campaignhandlers "github.com/chris/campaign-ledger/pkg/handlers/campaigns"
	donationhandlers "github.com/chris/campaign-ledger/pkg/handlers/donations"
	historyhandlers "github.com/chris/campaign-ledger/pkg/handlers/history"
	"github.com/chris/campaign-ledger/pkg/history"
	"github.com/chris/campaign-ledger/pkg/ledger/evm"
	"github.com/chris/campaign-ledger/pkg/middleware"
	"github.com/chris/campaign-ledger/pkg/orchestrator"
	"github.com/chris/campaign-ledger/pkg/wallet"
	"github.com/chris/campaign-ledger/pkg/websockets"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if !common.IsHexAddress(cfg.ContractAddress) {
		log.Fatalf("CONTRACT_ADDRESS %q is not a valid address", cfg.ContractAddress)
	}

	node, err := ethclient.Dial(cfg.LedgerRPCURL)
	if err != nil {
		log.Fatalf("failed to dial ledger RPC at %s: %v", cfg.LedgerRPCURL, err)
	}

	w, err := wallet.NewLocalWallet(node, cfg.WalletPrivateKey, cfg.ChainID)
	if err != nil {
		log.Fatalf("failed to set up wallet: %v", err)
	}
	if account, connected := w.ActiveAccount(); connected {
		slog.Info("wallet connected", "account", account.Hex())
	} else {
		slog.Info("no wallet configured, running read-only")
	}

	client, err := evm.NewClient(node, w, common.HexToAddress(cfg.ContractAddress))
	if err != nil {
		log.Fatalf("failed to create ledger client: %v", err)
	}

	hub := websockets.NewHub()

	readModel := campaigns.NewReadModel(client)
	orch := orchestrator.New(client, w, hub)
	orch.DefaultDonation = cfg.DefaultDonationAmount
	loader := history.NewLoader(client)

	campaignsHandler := campaignhandlers.NewCampaignsHandler(readModel, orch)
	donationsHandler := donationhandlers.NewDonationsHandler(orch)
	historyHandler := historyhandlers.NewHistoryHandler(loader)

	router := chi.NewRouter()
	router.Use(middleware.NewStructuredLogger(logger))
	router.Use(chimiddleware.Recoverer)

	router.Get("/campaigns", campaignsHandler.ListCampaigns)
	router.Post("/campaigns", campaignsHandler.CreateCampaign)
	router.Get("/drafts/campaign", campaignsHandler.GetDraft)
	router.Put("/drafts/campaign", campaignsHandler.PutDraft)
	router.Post("/campaigns/{campaignID}/donations", donationsHandler.Donate)
	router.Put("/campaigns/{campaignID}/donations/draft", donationsHandler.PutDraft)
	router.Post("/campaigns/{campaignID}/history/toggle", historyHandler.Toggle)
	router.Get("/campaigns/{campaignID}/history", historyHandler.Get)
	router.Get("/ws", hub.ServeHTTP)

	slog.Info("starting server", "port", cfg.HTTPPort, "contract", cfg.ContractAddress)
	if err := http.ListenAndServe(":"+cfg.HTTPPort, router); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
