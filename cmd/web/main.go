// @title           Tappy ID API
// @version         1.0
// @description     API do cartão de visita digital Tappy ID.
// @host            localhost:4000
// @BasePath        /

package main

import "tappyid_backend/internal/app"

func main() {
	app.Run()
}
