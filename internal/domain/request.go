package domain

// ScanRequest es la petición del caller: símbolo, precio objetivo y la
// cadena tal como llegó (sin ordenar). Se devuelve intacta en la respuesta.
type ScanRequest struct {
	Symbol string
	Target float64
	Chain  []ChainItem
}

// ButterflyResponse envuelve el request original y las butterflies encontradas.
// Chain es la cadena normalizada a la que apuntan los índices de Output.
type ButterflyResponse struct {
	Input  ScanRequest
	Chain  Chain
	Output []Butterfly
}

// CondorResponse envuelve el request original y las condors encontradas.
type CondorResponse struct {
	Input  ScanRequest
	Chain  Chain
	Output []Condor
}

// Nombres de las estrategias, tal como aparecen en Report.Strategy.
const (
	StrategyButterfly = "butterfly"
	StrategyCondor    = "condor"
)

// Report es el resultado de ejecutar una estrategia sobre un ScanRequest.
// Solo uno de Butterflies o Condors se rellena según Strategy. Si Err no es
// nil, no hay resultados parciales.
type Report struct {
	Strategy    string
	Input       ScanRequest
	Chain       Chain // cadena normalizada; los índices de los resultados apuntan aquí
	Butterflies []Butterfly
	Condors     []Condor
	Err         error
}

// Found devuelve cuántas estructuras contiene el report.
func (r Report) Found() int {
	return len(r.Butterflies) + len(r.Condors)
}
