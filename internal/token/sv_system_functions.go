package token

import "sort"

// SVSystemFunctions is the set of SystemVerilog system tasks/functions
// (IEEE Std 1800-2012 clauses 20-21) that the symbol table pre-registers
// as SystemFunction symbols in the root namespace at construction time
// (spec.md section 6). Every entry begins with "$". The 196-entry set
// matches DEFINED_SYSTEM_FUNCTIONS verbatim.
var SVSystemFunctions = sortedOnce([]string{
	"$acos", "$acosh", "$asin", "$asinh", "$assertcontrol", "$assertfailoff",
	"$assertfailon", "$assertkill", "$assertnonvacuouson", "$assertoff",
	"$asserton", "$assertpassoff", "$assertpasson", "$assertvacuousoff",
	"$async$and$array", "$async$and$plane", "$async$nand$array",
	"$async$nand$plane", "$async$nor$array", "$async$nor$plane",
	"$async$or$array", "$async$or$plane", "$atan", "$atan2", "$atanh",
	"$bits", "$bitstoreal", "$bitstoshortreal", "$cast", "$ceil", "$changed",
	"$changed_gclk", "$changing_gclk", "$clog2", "$cos", "$cosh",
	"$countbits", "$countones", "$coverage_control", "$coverage_get",
	"$coverage_get_max", "$coverage_merge", "$coverage_save", "$dimensions",
	"$display", "$displayb", "$displayh", "$displayo", "$dist_chi_square",
	"$dist_erlang", "$dist_exponential", "$dist_normal", "$dist_poisson",
	"$dist_t", "$dist_uniform", "$dumpall", "$dumpfile", "$dumpflush",
	"$dumplimit", "$dumpoff", "$dumpon", "$dumpports", "$dumpportsall",
	"$dumpportsflush", "$dumpportslimit", "$dumpportsoff", "$dumpportson",
	"$dumpvars", "$error", "$exit", "$exp", "$falling_gclk", "$fatal",
	"$fclose", "$fdisplay", "$fdisplayb", "$fdisplayh", "$fdisplayo",
	"$fell", "$fell_gclk", "$feof", "$ferror", "$fflush", "$fgetc", "$fgets",
	"$finish", "$floor", "$fmonitor", "$fmonitorb", "$fmonitorh",
	"$fmonitoro", "$fopen", "$fread", "$fscanf", "$fseek", "$fstrobe",
	"$fstrobeb", "$fstrobeh", "$fstrobeo", "$ftell", "$future_gclk",
	"$fwrite", "$fwriteb", "$fwriteh", "$fwriteo", "$get_coverage", "$high",
	"$hypot", "$increment", "$info", "$isunbounded", "$isunknown", "$itor",
	"$left", "$ln", "$load_coverage_db", "$log10", "$low", "$monitor",
	"$monitorb", "$monitorh", "$monitoro", "$monitoroff", "$monitoron",
	"$onehot", "$onehot0", "$past", "$past_gclk", "$pow", "$printtimescale",
	"$q_add", "$q_exam", "$q_full", "$q_initialize", "$q_remove", "$random",
	"$readmemb", "$readmemh", "$realtime", "$realtobits", "$rewind",
	"$right", "$rising_gclk", "$rose", "$rose_gclk", "$rtoi", "$sampled",
	"$set_coverage_db_name", "$sformat", "$sformatf", "$shortrealtobits",
	"$signed", "$sin", "$sinh", "$size", "$sqrt", "$sscanf", "$stable",
	"$stable_gclk", "$steady_gclk", "$stime", "$stop", "$strobe", "$strobeb",
	"$strobeh", "$strobeo", "$swrite", "$swriteb", "$swriteh", "$swriteo",
	"$sync$and$array", "$sync$and$plane", "$sync$nand$array",
	"$sync$nand$plane", "$sync$nor$array", "$sync$nor$plane",
	"$sync$or$array", "$sync$or$plane", "$system", "$tan", "$tanh",
	"$test$plusargs", "$time", "$timeformat", "$typename", "$ungetc",
	"$unpacked_dimensions", "$unsigned", "$value$plusargs", "$warning",
	"$write", "$writeb", "$writeh", "$writememb", "$writememh", "$writeo",
})

// IsSVSystemFunction reports whether name is a pre-registered SystemVerilog
// system function or task name. SVSystemFunctions is kept sorted by
// sortedOnce, so this binary-searches it the same way IsSVKeyword does.
func IsSVSystemFunction(name string) bool {
	i := sort.SearchStrings(SVSystemFunctions, name)
	return i < len(SVSystemFunctions) && SVSystemFunctions[i] == name
}
