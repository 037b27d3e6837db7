// Command token は /seed を呼び出すためのoperatorロールのトークンを発行します。
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	jwtmw "invoice_backend/internal/platform/jwt"
)

func main() {
	subject := flag.String("sub", "operator", "token subject")
	flag.Parse()

	_ = godotenv.Load(".env")

	cfg := jwtmw.LoadConfigFromEnv()
	if !cfg.Enabled() {
		log.Fatal("JWT_SECRET is not set")
	}

	token, err := jwtmw.NewGenerator(cfg.Secret, cfg.Expiration).GenerateToken(*subject, jwtmw.RoleOperator)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(token)
}
