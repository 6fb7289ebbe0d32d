package main

// flag runner
func main() {
	bindVar()
	execute()
}
