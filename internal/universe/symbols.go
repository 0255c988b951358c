package universe

// egxSymbols is the default screening universe of EGX tickers.
var egxSymbols = []string{
	"SUCE", "DCRC", "GOCO", "ELNA", "CFGH", "TALM", "APSW", "AIFI",
	"ACAMD", "SCTS", "QNBE", "BTFH", "DTPP", "AFDI", "DOMT", "EGBE",
	"ROTO", "EPPK", "GRCA", "VALU", "CANA", "OIH", "JUFO", "CCAP",
	"RACC", "FWRY", "UBEE", "EGCH", "CPCI", "LCSW", "WCDF", "AIHC",
	"SNFC", "OFH", "CCRS", "CIEB", "ZMID", "RTVC", "SPIN", "PHTV",
	"PHAR", "TMGH", "OCDI", "EFIC", "UEFM", "AMES", "MBSC", "ADIB",
	"BINV", "ORWE", "ADCI", "NAHO", "FAIT", "RREI", "MCRO", "AREH",
	"IBCT", "PHDC", "ENGC", "MPRC", "SDTI", "MEPA", "RUBX", "EBSC",
	"GGRN", "ARAB", "SUGR", "ZEOT", "WKOL", "NCCW", "EGAL", "SCFM",
	"PHGC", "ABUK", "RAYA", "FERC", "EHDR", "EAST", "INFI", "AIDC",
	"MOIN", "KWIN", "MBEG", "OBRI", "ATQA", "GSSC", "AFMC", "TANM",
	"ISMA", "GIHD", "IEEC", "ACAP", "PRCL", "GTEX", "CEFM", "ACRO",
	"CRST", "SCEM", "EXPA", "MCQE", "CLHO", "ORAS", "EALR", "MASR",
	"ELKA", "DAPH", "MHOT", "NAPR", "MPCI", "UNIT", "EIUD", "OLFI",
	"BIDI", "UNIP", "EEII", "ELEC", "ORHD", "ASCM", "CERA", "NARE",
	"HELI", "ARCC", "KZPC", "ASPI", "NHPS", "PRDC", "EDFM", "POUL",
	"KRDI", "GTWL", "SKPC", "BIOC", "MFPC", "ANFI", "ISPH", "EKHOA",
	"SPMD", "INEG", "ADPC", "EGAS", "ACTF", "MAAL", "ICFC", "MICH",
	"HBCO", "AMIA", "COPR", "SAUD", "CIRA", "NIPH", "NINH", "ELSH",
	"GBCO", "EASB", "HRHO", "GGCC", "ICID", "CNFN", "MIPH", "EGTS",
	"EMFD", "SMFR", "AALR", "ALUM", "ISMQ", "EFID", "HDBK", "SWDY",
	"GDWA", "TAQA", "UEGC", "AMOC", "ARVA", "AMER", "KABO", "BONY",
	"ALCN", "RMDA", "ACGC", "MENA", "MOSC", "ECAP", "OCPH", "MPCO",
	"DSCW", "ATLC", "EPCO", "ETEL", "CSAG", "CICH", "AJWA", "CAED",
	"COMI", "SVCE", "EFIH", "IFAP", "SIPC", "MOED", "IDRE", "ODIN",
	"PRMH", "MILS", "ETRS", "COSG", "SEIG", "GPPL", "DEIN",
}
