package compare

import (
	"strings"
	"testing"

	"github.com/Danypoz1986/StockBot/internal/types"
)

func TestDirectionalBuyCorrectOnlyWhenPriceRose(t *testing.T) {
	p := NewDirectionalMatch(0.5)
	prev := types.Snapshot{Suggestion: types.SuggestionBuy, Close: 10.00}

	v, alert := p.Judge("NOKIA.HE", "Nokia Oyj", prev, 10.60)
	if alert != nil {
		t.Fatal("Directional policy must never alert")
	}
	if !v.Correct {
		t.Errorf("Expected Osta to be correct on a rise, got incorrect: %s", v.Detail)
	}
	if v.Detail != "Nokia Oyj: Ennuste oli oikea (Osta)." {
		t.Errorf("Unexpected detail: %s", v.Detail)
	}
	if v.Direction != types.DirectionRose {
		t.Errorf("Expected direction Rose, got %s", v.Direction)
	}

	v, _ = p.Judge("NOKIA.HE", "Nokia Oyj", prev, 9.40)
	if v.Correct {
		t.Error("Expected Osta to be incorrect on a fall")
	}
	if !strings.Contains(v.Detail, "mutta hinta laski") {
		t.Errorf("Expected fall wording in detail, got: %s", v.Detail)
	}

	v, _ = p.Judge("NOKIA.HE", "Nokia Oyj", prev, 10.00)
	if v.Correct {
		t.Error("Expected Osta to be incorrect on an unchanged price")
	}
}

func TestDirectionalSellCorrectOnlyWhenPriceFell(t *testing.T) {
	p := NewDirectionalMatch(0.5)
	prev := types.Snapshot{Suggestion: types.SuggestionSell, Close: 20.00}

	if v, _ := p.Judge("UPM.HE", "UPM-Kymmene Oyj", prev, 19.00); !v.Correct {
		t.Errorf("Expected Myy to be correct on a fall: %s", v.Detail)
	}
	if v, _ := p.Judge("UPM.HE", "UPM-Kymmene Oyj", prev, 21.00); v.Correct {
		t.Error("Expected Myy to be incorrect on a rise")
	}
}

func TestDirectionalHoldBand(t *testing.T) {
	p := NewDirectionalMatch(0.5)
	prev := types.Snapshot{Suggestion: types.SuggestionHold, Close: 50.00}

	// 0.3 difference is inside the band.
	v, _ := p.Judge("KNEBV.HE", "Kone Oyj", prev, 50.30)
	if !v.Correct {
		t.Errorf("Expected Pidä to be correct within the band: %s", v.Detail)
	}
	if v.Detail != "Kone Oyj: Ennuste oli oikea (Pidä)." {
		t.Errorf("Unexpected detail: %s", v.Detail)
	}

	// Exactly the band is no longer stable.
	if v, _ := p.Judge("KNEBV.HE", "Kone Oyj", prev, 50.50); v.Correct {
		t.Error("Expected Pidä to be incorrect at exactly the band")
	}

	if v, _ := p.Judge("KNEBV.HE", "Kone Oyj", prev, 51.00); v.Correct {
		t.Error("Expected Pidä to be incorrect outside the band")
	}
}
