package main

import "github.com/IgnasAns/HabitFlow/cmd/hf/root"

func main() {
	root.Execute()
}
