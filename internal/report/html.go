package report

import (
	"bytes"
	"fmt"
	"html/template"
)

// The report table follows the layout of the official form: a merged title
// row, the ten column headings, a 1..10 numbering row, the data rows, the
// legal footnotes and the on-site inspection grid.
const reportTemplate = `<html><head>
<title>Report</title>
<style>
table { width: 100%; border-collapse: collapse; }
th, td { border: 1px solid black; padding: 10px; text-align: center; vertical-align: middle; }
th { background-color: #f2f2f2; }
</style></head><body>
<table>
<tr> <th colspan="10">WYKAZ DZIAŁAŃ AGROTECHNICZNYCH</th> </tr>
<tr>
<th>Oznaczenie działki (literowe)</th>
<th>Numer działki ewidencyjnej</th>
<th>Data wykonania czynności [dd/mm/rrrr]</th>
<th>Powierzchnia działki/uprawy [ha,a]</th>
<th>Rodzaj użytkowania (uprawa w plonie głównym/uprawa w poplonie)</th>
<th>Rodzaj wykonywanej czynności*</th>
<th>Nazwa środka ochrony roślin</th>
<th>Zastosowana ilość środka ochrony roślin/nawozu</th>
<th>Działanie/interwencja/praktyka Nummer pakietu lub wariantu**</th>
<th>Uwagi/powierzchnia wykonywanej czynności***</th>
</tr>
<tr><th>1</th><th>2</th><th>3</th><th>4</th><th>5</th><th>6</th><th>7</th><th>8</th><th>9</th><th>10</th></tr>
{{range .}}<tr>
<td>{{.CropIdentifier}}</td>
<td>{{.ParcelNumber}}</td>
<td>{{.DateString}}</td>
<td>{{.AreaString}}</td>
<td>{{.TypeOfUse}}</td>
<td>{{.Activity}}</td>
<td>{{.Product}}</td>
<td>{{.Amount}}</td>
<td>{{.Intervention}}</td>
<td>{{.Comments}}</td>
</tr>
{{end}}<tr><td colspan="10" style="padding: 10px; text-align: left;">
* należy umieścić zapisy dotyczące: zabiegów agrotechnicznych, pielęgnacyjnych i zabiegów wykonanych środkami ochrony roślin, nawożenia i innych zabiegów wykonywanych na danej działce (rolnej)<br>
** wpisć działanie/ interwencję odpowiednią dla oznaczenia wpisanego w kolumnie &#34;Pakiety/warianty/ interwencje realizowane w gospodarstwie&#34; , przy czym dla Działania rolno-środowiskowo-klimatycznego PROW 2014-2020 wpisać PRSK1420, dla Rolnictwa ekologicznego wpisać RE1420, dla Płatnosci rolno-środowiskowo-klimatycznych WPR PS wpisać ZRSK2327, dla Rolnictwa ekologicznego WPR PS wpisać RE2327, praktyka Międzyplony ozime lub wsiewki środplonowe wpisac E_MPW, praktyka Opracowanie i przestrzeganie planu nawożenia: wariant podstawowy lub wariant z wapnowaniem wpisać E_OPN, Uproszczone systemy uprawy wpisać E_USU, Wymieszanie słomy z glebą wpisać E_WSG, Biologiczna ochrona upraw wpisać E_BOU<br>
***należy wypełnić, gdy dana czynność lub zabieg nie są wykonywane na całej powierzchni działki (np. gdy koszeniu podlega 20% pow. działki), bądź w celu uszczegółowienia zapisów znajdujących się w innych kolumnach tego wiersza np. wskazanie sposobu realizacji integrowanej ochrony roślin (podanie co najmniej przyczyny wykonania zabiegu środkiem ochrony roślin) </td></tr>
<tr>
<td rowspan="3" style="vertical-align: top; padding: 15px; background-color: lightgray;">Pole wypełniane podczas kontroli na miejscu</td>
<td colspan="2" style="height: 40px; background-color: lightgray;">Data kontroli</td>
<td colspan="2" style="height: 40px; background-color: lightgray;">Nazwisko i imię inspektora</td>
<td colspan="2" style="height: 40px; background-color: lightgray;">Podpis inspektora terenowego</td>
<td colspan="2" style="height: 40px; background-color: lightgray;">Nazwisko i imię osoby obecnej przy kontroli</td>
<td colspan="2" style="height: 40px; background-color: lightgray;">Podpis osoby obecnej przy kontroli</td>
</tr>
<tr>
<td colspan="2" style="height: 40px; background-color: lightgray;"></td>
<td colspan="2" style="height: 40px; background-color: lightgray;"></td>
<td colspan="2" style="height: 40px; background-color: lightgray;"></td>
<td colspan="2" style="height: 40px; background-color: lightgray;"></td>
<td colspan="2" style="height: 40px; background-color: lightgray;"></td>
</tr>
<tr>
<td colspan="2" style="height: 40px; background-color: lightgray;"></td>
<td colspan="2" style="height: 40px; background-color: lightgray;"></td>
<td colspan="2" style="height: 40px; background-color: lightgray;"></td>
<td colspan="2" style="height: 40px; background-color: lightgray;"></td>
<td colspan="2" style="height: 40px; background-color: lightgray;"></td>
</tr>
</table></body></html>`

var htmlTemplate = template.Must(template.New("agrotechnical").Parse(reportTemplate))

// HTML renders the report rows into the regulatory table.
func (s *Service) HTML(rows []ActivityRow) (string, error) {
	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, rows); err != nil {
		return "", fmt.Errorf("failed to render report: %w", err)
	}
	return buf.String(), nil
}
