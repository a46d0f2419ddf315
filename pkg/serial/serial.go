// Package serial asigna identificadores numéricos consecutivos representados
// como string, respetando un piso mínimo por colección (empresas desde 100,
// pedidos desde 1000).
package serial

import "strconv"

// Next devuelve el siguiente identificador para una colección cuyos ids son
// strings numéricos. Los ids no numéricos (o vacíos) cuentan como 0, de modo
// que nunca hay pánico por datos sucios del documento compartido. Con la
// colección vacía devuelve el piso tal cual.
func Next(ids []string, floor int) string {
	max := floor - 1
	for _, id := range ids {
		n, err := strconv.Atoi(id)
		if err != nil {
			n = 0
		}
		if n > max {
			max = n
		}
	}
	return strconv.Itoa(max + 1)
}
