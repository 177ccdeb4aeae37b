package main

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/onlybot12/costumer-service/internal/config"
	"github.com/onlybot12/costumer-service/internal/handler"
	"github.com/onlybot12/costumer-service/internal/hub"
)

// App is the main application container.
type App struct {
	Hub    *hub.Hub
	Config *config.Config
}

func main() {
	app, cleanup, err := InitializeApp()
	if err != nil {
		logrus.Fatalf("Failed to initialize app: %v", err)
	}
	defer cleanup()

	if level, err := logrus.ParseLevel(app.Config.LogLevel); err == nil {
		logrus.SetLevel(level)
	}

	// Run the hub's main loop in a goroutine
	go app.Hub.Run()

	wsHandler := handler.NewWebsocketHandler(app.Hub)

	r := mux.NewRouter()
	r.HandleFunc("/ws", wsHandler.HandleConnection).Methods("GET")
	r.HandleFunc("/admin", servePage("public/admin.html")).Methods("GET")
	r.PathPrefix("/").Handler(http.FileServer(http.Dir("public")))

	logrus.Infof("Server starting on %s", app.Config.Addr)
	if err := http.ListenAndServe(app.Config.Addr, r); err != nil {
		logrus.Fatalf("Failed to start server: %v", err)
	}
}

func servePage(path string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, path)
	}
}
