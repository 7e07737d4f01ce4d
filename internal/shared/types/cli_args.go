package types

// CLIArgs represents the command-line arguments.
type CLIArgs struct {
	ConfigFile string
	Ledger     string
	Grants     string
	Aid        string
	Otsus      string
	ReportName string
	ReportType []string
	Dir        string
	Level      int
	Top        int
	Verbose    bool

	// Opções específicas de subcomandos
	Unit       string
	Query      string
	GrantTypes []string
	Check      bool
}
