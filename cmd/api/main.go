package main

import (
	"context"
	"os"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Maintenance Approval API
// @version         1.0
// @description     Maintenance request lifecycle and cost-approval engine backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	if err := Execute(context.Background()); err != nil {
		os.Exit(1)
	}
}
