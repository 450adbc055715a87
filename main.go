package main

import (
	"log"

	internalApp "github.com/Elshan-Aliyev/zcorner-front/internal/app"
	"github.com/Elshan-Aliyev/zcorner-front/pkg/app"

	_ "github.com/Elshan-Aliyev/zcorner-front/migrations"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/plugins/migratecmd"
)

func main() {
	pb := pocketbase.New()

	// 1. Migrations
	migratecmd.MustRegister(pb, pb.RootCmd, migratecmd.Config{
		Automigrate: true,
	})

	// 2. Dependency wiring
	c := internalApp.NewContainer(pb)

	// 3. Routes
	app.RegisterRoutes(pb, c)

	if err := pb.Start(); err != nil {
		log.Fatal(err)
	}
}
