package invoice

import "fmt"

const cacheKeyList = "invoices:list"

func cacheKeyDetails(id string) string {
	return fmt.Sprintf("invoices:details:%s", id)
}
