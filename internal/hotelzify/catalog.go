package hotelzify

import "strconv"

// ChainCatalog is the decoded chain-hotels listing with an ID index.
// Catalogs are request-scoped and read-only after construction.
type ChainCatalog struct {
	ChainName string
	Hotels    []ChainHotel

	byID map[int64]*ChainHotel
}

// NewChainCatalog builds an indexed catalog from a chain listing.
func NewChainCatalog(name string, hotels []ChainHotel) *ChainCatalog {
	c := &ChainCatalog{
		ChainName: name,
		Hotels:    hotels,
		byID:      make(map[int64]*ChainHotel, len(hotels)),
	}
	for i := range hotels {
		c.byID[hotels[i].ID] = &hotels[i]
	}
	return c
}

// ByID returns the catalog entry with the given hotel ID.
func (c *ChainCatalog) ByID(id int64) (*ChainHotel, bool) {
	h, ok := c.byID[id]
	return h, ok
}

// ByStringID resolves a string hotel ID (as tool inputs carry them)
// against the numeric catalog IDs.
func (c *ChainCatalog) ByStringID(id string) (*ChainHotel, bool) {
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return nil, false
	}
	return c.ByID(n)
}
