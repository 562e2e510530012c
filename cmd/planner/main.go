package main

import "daily-planner-api/cmd/planner/root"

func main() {
	root.Execute()
}
