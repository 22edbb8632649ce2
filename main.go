package main

import (
	"flag"
	"log"

	"github.com/caseward/caseward-backend/cmd"
)

func main() {
	shouldRunMigrations := flag.Bool("migrations", false, "Run migrations")
	shouldRunEscalation := flag.Bool("escalate-court-dates", false, "Run the court date escalation job")
	flag.Parse()

	if !*shouldRunMigrations && !*shouldRunEscalation {
		log.Fatal("nothing to do: pass -migrations and/or -escalate-court-dates")
	}

	if *shouldRunMigrations {
		if err := cmd.RunMigrations(); err != nil {
			log.Fatal(err)
		}
	}
	if *shouldRunEscalation {
		if err := cmd.RunEscalateCourtDates(); err != nil {
			log.Fatal(err)
		}
	}
}
