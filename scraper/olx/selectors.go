package olx

// Listing page
const (
	adsBlockSelector = `div[data-testid="l-card"]`
)

// Ad detail page
const (
	// contact section
	adPubDateSelector    = `span[data-cy="ad-posted-at"]`
	btnShowPhoneSelector = `button[data-testid="show-phone"]`
	contactPhoneSelector = `a[data-testid="contact-phone"]`

	// user profile
	userNameSelector         = `a[data-testid="user-profile-link"] h4`
	userScoreSelector        = `div[data-testid="score-widget"] > p`
	userRegistrationSelector = `a[data-testid="user-profile-link"] > div > div > p > span`
	userLastSeenSelector     = `p[data-testid="lastSeenBox"] > span`

	// description section
	descriptionPartsSelector = `div[data-cy="ad_description"] > div`

	// footer
	footerBarSelector     = `div[data-testid="ad-footer-bar-section"]`
	adIDSelector          = `div[data-testid="ad-footer-bar-section"] > span`
	adViewCounterSelector = `span[data-testid="page-view-counter"]`
)

// Login page
const (
	topbarUserSelector  = `h5[data-testid="topbar-dropdown-header"]`
	myOlxLinkSelector   = `a[data-cy="myolx-link"]`
	loginEmailSelector  = `#username`
	loginPassSelector   = `#password`
	loginSubmitSelector = `button[data-testid="login-submit-button"]`
)

// blockCheckJS probes for the CloudFront interstitial heading.
const blockCheckJS = `
	(function() {
		var headings = document.querySelectorAll('h1');
		for (var i = 0; i < headings.length; i++) {
			if (headings[i].innerText.indexOf('403 ERROR') !== -1) return true;
		}
		return false;
	})()
`

// listingCardsJS collects (title, price, href) triples from the ad cards
// on a search results page. Cards without a link are dropped here.
const listingCardsJS = `
	(function() {
		var cards = [];
		document.querySelectorAll('div[data-testid="l-card"]').forEach(function(card) {
			var link = card.querySelector('div[data-cy="ad-card-title"] a');
			if (!link || !link.getAttribute('href')) return;
			var titleEl = card.querySelector('div[data-cy="ad-card-title"] a > h4');
			var priceEl = card.querySelector('p[data-testid="ad-price"]');
			cards.push({
				title: titleEl ? titleEl.innerText.trim() : '',
				price: priceEl ? priceEl.innerText.trim() : '',
				href: link.getAttribute('href')
			});
		});
		return cards;
	})()
`

// locationJS joins the text of the sibling nodes next to the hidden map
// overlay marker.
const locationJS = `
	(function() {
		var overlay = document.querySelector('div[data-testid="qa-map-overlay-hidden"]');
		if (!overlay || !overlay.parentElement) return '';
		var parts = [];
		overlay.parentElement.querySelectorAll('svg + div *').forEach(function(el) {
			var t = el.innerText ? el.innerText.trim() : '';
			if (t) parts.push(t);
		});
		return parts.join(' ');
	})()
`

// descriptionJS joins the description paragraphs into one string.
const descriptionJS = `
	(function() {
		var parts = [];
		document.querySelectorAll('div[data-cy="ad_description"] > div').forEach(function(el) {
			var t = el.innerText ? el.innerText.trim() : '';
			if (t) parts.push(t);
		});
		return parts.join(' ');
	})()
`

// adTagsJS returns the tag texts, or an empty array when the tag block is
// not rendered.
const adTagsJS = `
	(function() {
		var blocks = document.querySelectorAll(
			'div[data-testid="ad-promotion-actions"] + div[data-testid="qa-advert-slot"] + div > div'
		);
		if (!blocks.length || blocks[0].offsetParent === null) return [];
		var tags = [];
		blocks.forEach(function(el) {
			var t = el.innerText ? el.innerText.trim() : '';
			if (t) tags.push(t);
		});
		return tags;
	})()
`

// imgSrcJS returns the photo block's img src attributes, skipping empty
// ones, or an empty array when the block is not visible.
const imgSrcJS = `
	(function() {
		var block = document.querySelector('div[data-testid="ad-photo"]');
		if (!block || block.offsetParent === null) return [];
		var srcs = [];
		block.querySelectorAll('img').forEach(function(img) {
			var s = img.getAttribute('src');
			if (s) srcs.push(s);
		});
		return srcs;
	})()
`
