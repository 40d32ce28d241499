package checkout

// CSS bindings for the storefront under automation. They are the de facto
// wire protocol between this service and the site; any change there is a
// breaking change here.
const (
	selQuantityInput  = "input.qty"
	selAddToCart      = `button[name="add-to-cart"]`
	cartAjaxFragment  = "wc-ajax"
	selStateContainer = "#select2-billing_state-container"
	selStateSearch    = ".select2-search__field"

	// Rendered by WooCommerce when the requested quantity exceeds stock.
	// Tied to the site's current wording and locale.
	outOfStockPhrase = "não pode adicionar a quantidade"
)
