package nse

// The tracked symbol universes, one per market-cap category. These are hand
// curated lists of liquid NSE names; a fetch pulls the whole list and keeps
// the top names by traded volume.

const (
	// MidCap is the category label stamped on mid-cap quotes.
	MidCap = "Mid Cap"
	// SmallCap is the category label stamped on small-cap quotes.
	SmallCap = "Small Cap"
)

// MidCapSymbols lists the tracked mid-cap names.
var MidCapSymbols = []string{
	"ADANIENT", "APOLLOHOSP", "VBL", "PAGEIND", "PERSISTENT", "ABB", "AUBANK", "GODREJCP",
	"POLICYBZR", "INDUSINDBK", "CUMMINSIND", "DIXON", "HAVELLS", "AMBUJACEM", "PIDILITIND", "TORNTPOWER",
	"LUPIN", "BHEL", "ABBOTINDIA", "TATACHEM", "ESCORTS", "MUTHOOTFIN", "DABUR",
	"CHOLAFIN", "COLPAL", "MPHASIS", "TATAELXSI", "BIOCON", "SUNDARMFIN", "KPIL",
	"TRENT", "LICI", "TATACOMM", "GAIL", "JINDALSTEL", "NAUKRI", "LTF", "KPITTECH",
	"OFSS", "JUBLFOOD", "SYNGENE", "ZYDUSLIFE", "ALKEM", "HDFCAMC", "MAZDOCK", "MAXHEALTH", "POLYCAB",
	"MANKIND", "WAAREEENER", "UNIONBANK", "GMRAIRPORT", "INDUSTOWER", "MARICO", "INDIANB", "BSE",
	"NHPC", "NTPCGREEN", "SRF", "BHARTIHEXA", "SBICARD", "ASHOKLEY", "PAYTM", "UNOMINDA",
	"ABCAPITAL", "RVNL", "FORTIS", "VOLTAS", "PRESTIGE", "NYKAA", "LLOYDSME",
}

// SmallCapSymbols lists the tracked small-cap names.
var SmallCapSymbols = []string{
	"IDBI", "IOB", "FACT", "GODFRYPHLP", "AIIL", "KAYNES", "MCX", "RADICO", "UCOBANK",
	"SUVEN", "CHOLAHLDNG", "NH", "POONAWALLA", "DELHIVERY", "CENTRALBK", "CDSL", "GODIGIT", "GILLETTE",
	"ASTERDM", "ITI", "AFFLE", "GRSE", "KIMS", "NBCC", "SUMICHEM", "AEGISLOG", "AMBER", "HINDCOPPER",
	"LALPATHLAB", "PPLPHARMA", "JBCHEPHARM", "FSL", "INOXWIND", "ZFCVINDIA", "EMCURE", "TATACHEM",
	"SHYAMMETL", "NAVINFLUOR", "ANANDRATHI", "EIHOTEL", "WOCKPHARMA", "RAMCOCEM", "MANAPPURAM",
	"VSTIND", "RAJESHEXPO", "IRCON", "BEML", "IRCTC", "HUDCO", "HAL", "SAIL", "BEL",
	"COFORGE", "KPIGREEN", "CROMPTON", "THERMAX", "ASTRAL", "METROPOLIS", "SJVN", "IRB", "RBLBANK",
	"INDIAMART", "DEEPAKNTR", "LMW", "CREDITACC", "NAVA", "KEI", "OBEROIRLTY", "RATNAMANI",
}

// Universe maps every category label to its symbol list, in fetch order.
func Universe() map[string][]string {
	return map[string][]string{
		MidCap:   MidCapSymbols,
		SmallCap: SmallCapSymbols,
	}
}

// Categories returns the category labels in their reporting order.
func Categories() []string { return []string{MidCap, SmallCap} }
