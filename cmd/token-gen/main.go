// token-gen mints long-lived service tokens for headless admin API
// clients (deploy scripts, CI). The signing secret comes from
// ZCORNER_API_SECRET and MUST match the server's.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/Elshan-Aliyev/zcorner-front/pkg/middleware"
)

func main() {
	var subject string
	var days int

	flag.StringVar(&subject, "subject", "", "Token subject (e.g. ci-deployer)")
	flag.IntVar(&days, "days", 0, "Validity days")
	flag.Parse()

	if subject == "" || days <= 0 {
		fmt.Println("Error: -subject and -days are required")
		flag.Usage()
		os.Exit(1)
	}

	expiry := time.Now().AddDate(0, 0, days)
	token, err := middleware.MintServiceToken(subject, expiry)
	if err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}

	fmt.Println("================ SERVICE TOKEN ================")
	fmt.Println("Subject:", subject)
	fmt.Println("Expires:", expiry.Format("2006-01-02"))
	fmt.Println()
	fmt.Println(token)
	fmt.Println("===============================================")
}
