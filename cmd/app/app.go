package main

import "github.com/myapplevix/store-backend/internal/app"

//	@title			Store Backend API
//	@version		1.0
//	@description	Storefront catalog and back-office API.

//	@securityDefinitions.apikey	AdminToken
//	@in							header
//	@name						Authorization

//	@BasePath	/api/v1
func main() {
	app.Run()
}
