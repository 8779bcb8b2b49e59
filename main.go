package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/MarcGrol/shopfront/lib/mybus"
	"github.com/MarcGrol/shopfront/lib/myconfig"
	"github.com/MarcGrol/shopfront/lib/mylog"
	"github.com/MarcGrol/shopfront/lib/mytime"
	"github.com/MarcGrol/shopfront/lib/myuuid"
	"github.com/MarcGrol/shopfront/services/basket"
	"github.com/MarcGrol/shopfront/services/catalog"
	"github.com/MarcGrol/shopfront/services/order"
	"github.com/MarcGrol/shopfront/services/shop"
	"github.com/MarcGrol/shopfront/services/shopapi"
	"github.com/MarcGrol/shopfront/services/validation"
)

func main() {
	c := context.Background()

	config, err := myconfig.Load()
	if err != nil {
		log.Fatalf("Error loading config: %s", err)
	}

	rules, err := validation.CompileRules(config.ValidationRules)
	if err != nil {
		log.Fatalf("Error compiling validation rules: %s", err)
	}

	bus := mybus.New()
	productStore := catalog.NewStore()
	shoppingBasket := basket.New(bus)
	orderDraft := order.NewDraft(validation.NewEngine(rules), bus)

	apiClient := shopapi.NewClient(config.API.BaseURL, config.API.Timeout, mylog.New("shopapi"))

	router := mux.NewRouter()

	shopService := shop.NewService(bus, productStore, shoppingBasket, orderDraft,
		apiClient, apiClient,
		mytime.RealNower{}, myuuid.RealUUIDer{}, mylog.New("shop"))
	shopService.Subscribe(c)
	shopService.RegisterEndpoints(c, router)

	// one-shot read seeding the catalog snapshot; a failure surfaces
	// on the storefront instead of killing the process
	shopService.LoadCatalog(c)

	startWebServerBlocking(router, config.Web.Port)
}

func startWebServerBlocking(router *mux.Router, port string) {
	log.Printf("Starting webserver on port %s (try http://localhost:%s)", port, port)
	err := http.ListenAndServe(fmt.Sprintf(":%s", port), router)
	if err != nil {
		log.Fatalf("Error starting webserver on port %s: %s", port, err)
	}
}
