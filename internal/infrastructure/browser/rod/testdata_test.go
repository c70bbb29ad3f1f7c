package rod

const (
	basicHTML = `<!DOCTYPE html>
<html>
<head><title>Test Page</title></head>
<body>
	<h1>Hello World</h1>
	<p>Limited offer, click now.</p>
</body>
</html>`

	formHTML = `<!DOCTYPE html>
<html>
<head><title>Form</title></head>
<body>
	<form id="testForm" onsubmit="return false">
		<input id="username" type="text" name="username" placeholder="Name" />
		<input id="secret" type="hidden" name="secret" value="x" />
		<button id="submit" type="button" onclick="document.getElementById('result').textContent = 'Hi ' + document.getElementById('username').value">Submit</button>
	</form>
	<div id="result"></div>
	<a href="/deals" aria-label="Deals">Deals</a>
</body>
</html>`
)
