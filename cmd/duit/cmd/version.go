package cmd

func init() {
	RegisterCommand(&Command{
		Name:  "version",
		Short: "Show version information",
		Long:  "Print the duit CLI version and build time.",
		Usage: "duit version",
		Run: func(args []string) error {
			printVersion()
			return nil
		},
	})
}
