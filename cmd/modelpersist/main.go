// Command modelpersist inspects saved model container directories.
package main

func main() {
	Execute()
}
