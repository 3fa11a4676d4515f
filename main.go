package main

import "github.com/salesdesk/crm-portal/cmd"

func main() {
	cmd.Execute()
}
